package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconMail    = ""
	IconCheck   = ""
	IconCross   = ""
	IconWarning = ""
	IconInfo    = ""
	IconUsers   = ""
	IconSpark   = "\U000F0674" // 󰙴
)
