package config

var websiteCategories = []string{
	"ALDR",
	"ANON",
	"COMM",
	"COMT",
	"CTRL",
	"CULTR",
	"DATE",
	"ECON",
	"ENV",
	"FILE",
	"GAME",
	"GMB",
	"GOVT",
	"GRP",
	"HACK",
	"HATE",
	"HOST",
	"HUMR",
	"IGO",
	"LGBT",
	"MILX",
	"MISC",
	"MMED",
	"NEWS",
	"POLR",
	"PORN",
	"PROV",
	"PUBH",
	"REL",
	"SRCH",
	"XED",
}

// KnownCategory returns whether code is a known website category code.
func KnownCategory(code string) bool {
	for _, v := range websiteCategories {
		if v == code {
			return true
		}
	}
	return false
}
