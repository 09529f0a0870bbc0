package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetadata_DefaultsToAssistantOff(t *testing.T) {
	m := NewMetadata()

	assert.False(t, m.AssistantOn)
	assert.Nil(t, m.Title)
}

func TestMetadata_ToggleAssistant(t *testing.T) {
	m := NewMetadata()

	m.ToggleAssistant()
	assert.True(t, m.AssistantOn)

	m.ToggleAssistant()
	assert.False(t, m.AssistantOn)
}

func TestPluginPreferences_APIKeyFor(t *testing.T) {
	prefs := &PluginPreferences{GeminiApiKey: "g", HuggingFaceApiKey: "h"}

	assert.Equal(t, "g", prefs.APIKeyFor("gemini"))
	assert.Equal(t, "g", prefs.APIKeyFor(""))
	assert.Equal(t, "h", prefs.APIKeyFor("huggingface"))
	assert.Empty(t, prefs.APIKeyFor("ollama"))

	var none *PluginPreferences
	assert.Empty(t, none.APIKeyFor("gemini"))
}

func TestMetadata_CloneCopiesTitle(t *testing.T) {
	title := "Draft"
	m := Metadata{AssistantOn: true, Title: &title}

	c := m.Clone()
	title = "changed"

	assert.True(t, c.AssistantOn)
	assert.Equal(t, "Draft", *c.Title)
	assert.Nil(t, NewMetadata().Clone().Title)
}
