// Package keywords turns free-text job descriptions into ranked keyword
// lists and routes keywords into a fixed taxonomy of skill categories.
package keywords

// tablesVersion identifies the revision of the static lookup tables below.
// Bump when synonym or hint data changes so stored analyses can be traced
// back to the table revision that produced them.
const tablesVersion = 1

// synonyms maps normalized keyword spellings to their canonical form.
// Identity entries pin multi-word terms so the known-phrase pass picks them
// up even in lowercase text.
var synonyms = map[string]string{
	"azure ad":                 "entra id",
	"microsoft entra":          "entra id",
	"entra":                    "entra id",
	"o365":                     "microsoft 365",
	"m365":                     "microsoft 365",
	"office 365":               "microsoft 365",
	"active directory":         "active directory",
	"ad":                       "active directory",
	"powershell":               "powershell",
	"ps":                       "powershell",
	"vulnerability management": "vulnerability management",
	"vulnerability scanning":   "vulnerability scanning",
	"incident response":        "incident response",
	"siem":                     "siem",
	"edr":                      "edr",
}

// Category identifiers. Declaration order here is the documented routing
// order: a keyword matching hints in more than one category lands in the
// earliest one.
const (
	CategoryCloudIdentity  = "cloud_identity"
	CategorySecurity       = "security"
	CategoryNetworking     = "networking"
	CategoryOSServers      = "os_servers"
	CategoryScripting      = "scripting_automation"
	CategoryTools          = "tools"
	CategoryVirtualization = "virtualization"
)

// CategoryOrder is the fixed hint-check order for bucket routing.
var CategoryOrder = []string{
	CategoryCloudIdentity,
	CategorySecurity,
	CategoryNetworking,
	CategoryOSServers,
	CategoryScripting,
	CategoryTools,
	CategoryVirtualization,
}

// CategoryLabels maps category identifiers to display labels.
var CategoryLabels = map[string]string{
	CategoryCloudIdentity:  "Cloud & Identity",
	CategorySecurity:       "Security",
	CategoryNetworking:     "Networking",
	CategoryOSServers:      "OS & Servers",
	CategoryScripting:      "Scripting & Automation",
	CategoryTools:          "Tools",
	CategoryVirtualization: "Virtualization",
}

// categoryHints holds the static hint-term lists used for routing. A hint
// matches when it contains the keyword or the keyword contains it.
var categoryHints = map[string][]string{
	CategoryCloudIdentity: {
		"azure", "aws", "gcp", "entra id", "azure ad", "iam", "sso",
		"microsoft 365", "intune", "conditional access", "okta", "adfs",
		"saml", "oauth", "oidc", "sharepoint", "exchange online",
	},
	CategorySecurity: {
		"mfa", "hardening", "incident response", "siem", "edr",
		"vulnerability", "patch", "hunting", "soc", "mitre", "attack",
		"log analysis", "alert triage", "forensics", "iso 27001", "nist",
		"risk", "threat", "malware", "phishing", "security monitoring",
	},
	CategoryNetworking: {
		"cisco", "routing", "switching", "vlan", "vpn", "firewall", "ids",
		"ips", "network monitoring", "tcp/ip", "dns", "dhcp", "bgp", "ospf",
		"nat", "wireshark",
	},
	CategoryOSServers: {
		"windows server", "linux", "active directory", "gpo", "dns", "dhcp",
		"server", "rhel", "ubuntu", "debian", "kernel", "systemd",
	},
	CategoryScripting: {
		"powershell", "bash", "python", "automation", "scripting", "ansible",
		"terraform", "ci/cd", "git", "pipelines",
	},
	CategoryTools: {
		"intune", "knox", "defender", "sentinel", "splunk", "qradar",
		"elastic", "jira", "servicenow", "monitoring", "zabbix", "nagios",
		"prometheus", "grafana",
	},
	CategoryVirtualization: {
		"vmware", "esxi", "vcenter", "hyper-v", "virtualization", "kvm",
		"docker", "kubernetes",
	},
}

// fallbackChain is the heuristic substring chain tried when no hint list
// matches, in this fixed order. Keywords matching nothing default to tools.
var fallbackChain = []struct {
	category string
	terms    []string
}{
	{CategoryCloudIdentity, []string{"azure", "aws", "entra", "iam", "microsoft 365", "intune", "sso"}},
	{CategorySecurity, []string{"mfa", "hardening", "incident", "siem", "edr", "vulnerability", "patch", "soc"}},
	{CategoryNetworking, []string{"cisco", "vlan", "vpn", "firewall", "routing", "switch", "dns", "dhcp"}},
	{CategoryOSServers, []string{"windows", "linux", "active directory", "gpo", "server"}},
	{CategoryScripting, []string{"powershell", "bash", "python", "ansible", "terraform", "automation"}},
	{CategoryVirtualization, []string{"vmware", "hyper-v", "kvm", "docker", "kubernetes", "virtual"}},
}

// knownAcronyms are upcased when rendering technical-skills lines.
var knownAcronyms = map[string]bool{
	"MFA": true, "SIEM": true, "EDR": true, "VPN": true, "VLAN": true,
	"GPO": true, "AWS": true,
}
