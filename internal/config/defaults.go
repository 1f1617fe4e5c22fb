package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"max_attempts":      3,
		"backend":           "none",
		"openai_base_url":   "https://api.openai.com/v1",
		"openai_model":      "",
		"openai_api_key":    "",
		"agent_cmd":         "",
		"agent_args":        []string{},
		"agent_prompt_flag": "-p",
		"agent_timeout":     300,
		"traits_file":       "",
		"sink_dir":          "~/.statforge/state",
		"sink_payload":      false,
		"sink_errors":       false,
		"show_progress":     true,
		"no_color":          false,
	}
}
