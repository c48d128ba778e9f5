package profile

// Default returns the built-in cyber-security profile used when no profile
// file is available or a file fails to parse. Callers fall back to it
// instead of failing the whole operation.
func Default() *Profile {
	p := &Profile{
		ID:    "cyber_security",
		Title: "Cyber Security / IT Infrastructure",
		JobTitles: []string{
			"Security Engineer", "SOC Analyst", "System Administrator",
			"IT Security Specialist",
		},
		Keywords: map[string][]string{
			"core": {
				"incident response", "vulnerability management", "threat detection",
				"hardening", "patch management", "access control",
			},
			"technologies": {
				"entra id", "active directory", "microsoft 365", "azure",
				"windows server", "linux", "vmware",
			},
			"tools": {
				"splunk", "wireshark", "nessus", "defender", "powershell",
				"ansible", "terraform",
			},
			"certifications": {"security+", "ceh", "az-500"},
			"frameworks":     {"iso 27001", "nist", "cis benchmarks", "mitre att&ck"},
			"soft_skills":    {"documentation", "on-call", "stakeholder communication"},
		},
		ActionVerbs: []string{
			"implemented", "automated", "reduced", "hardened", "migrated",
			"deployed", "investigated", "led", "designed", "monitored",
		},
		BulletTemplates: []string{
			"Hardened {system} against {threat}, cutting exposure by {value}",
			"Automated {task} with {tool}, saving {value} per week",
			"Led incident response for {incident}, restoring service in {value}",
		},
	}
	p.metrics = []string{"%", "mttr", "uptime", "tickets", "endpoints", "incidents"}
	p.normalize()
	return p
}
