package paths

// LocalConfigFile is the per-project config file name.
const LocalConfigFile = ".beadmatch.yaml"

// ConfigCandidates lists config file locations in search order: the working
// directory's .beadmatch.yaml, then the per-user config file.
func ConfigCandidates() []string {
	return []string{LocalConfigFile, DefaultConfigPath()}
}

// FindConfig returns the first existing config file. An explicit path is
// returned as-is after home expansion, whether or not it exists. Returns ""
// when no config file is found.
func FindConfig(explicit string) string {
	if explicit != "" {
		return ExpandHome(explicit)
	}
	for _, candidate := range ConfigCandidates() {
		if isFile(candidate) {
			return candidate
		}
	}
	return ""
}
