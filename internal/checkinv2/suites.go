package checkinv2

// Suite is a named group of nettests sharing the same progress bar.
type Suite struct {
	// Name is the suite name.
	Name string

	// Nettests contains the nettest names in execution order.
	Nettests []string
}

// Suites contains the suites we generate by default, in execution order.
var Suites = []Suite{{
	Name: "websites",
	Nettests: []string{
		"web_connectivity",
	},
}, {
	Name: "im",
	Nettests: []string{
		"facebook_messenger",
		"signal",
		"telegram",
		"whatsapp",
	},
}, {
	Name: "performance",
	Nettests: []string{
		"dash",
		"ndt",
		"http_header_field_manipulation",
		"http_invalid_request_line",
	},
}, {
	Name: "circumvention",
	Nettests: []string{
		"psiphon",
		"tor",
	},
}, {
	Name: "experimental",
	Nettests: []string{
		"dnscheck",
		"stun_reachability",
		"torsf",
		"vanilla_tor",
		"urlgetter",
	},
}}
