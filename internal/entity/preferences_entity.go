package entity

type PluginPreferences struct {
	GeminiApiKey      string `json:"gemini_api_key"`
	HuggingFaceApiKey string `json:"huggingface_api_key,omitempty"`
}

// APIKeyFor returns the credential of the named LLM provider. Gemini is the default provider.
func (p *PluginPreferences) APIKeyFor(provider string) string {
	if p == nil {
		return ""
	}
	switch provider {
	case "huggingface":
		return p.HuggingFaceApiKey
	case "ollama":
		return ""
	default:
		return p.GeminiApiKey
	}
}
