package messages_test

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/umutulay/task-management-system/pkg/messages"
	"github.com/umutulay/task-management-system/pkg/translator"
)

func TestMain(m *testing.M) {
	// Initialize minimal bundle for tests
	translator.Translator = i18n.NewBundle(language.English)
	err := translator.Translator.AddMessages(language.English, &i18n.Message{
		ID:    "test_key",
		Other: "Test message",
	})
	if err != nil {
		return
	}
	err = translator.Translator.AddMessages(language.French, &i18n.Message{
		ID:    "test_key",
		Other: "Message de test",
	})
	if err != nil {
		return
	}
	m.Run()
}

func TestGet_ReturnsTranslation(t *testing.T) {
	msg := messages.Get("test_key", translator.LanguageEn)
	assert.Equal(t, "Test message", msg)
}

func TestGet_ReturnsFrenchTranslation(t *testing.T) {
	msg := messages.Get("test_key", translator.LanguageFr)
	assert.Equal(t, "Message de test", msg)
}

func TestGet_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	msg := messages.Get("test_key", "de")
	assert.Equal(t, "Test message", msg)
}

func TestGet_FallbackToKey(t *testing.T) {
	// No translation exists for "unknown_key"
	msg := messages.Get("unknown_key", translator.LanguageEn)
	assert.Equal(t, "unknown_key", msg)
}
