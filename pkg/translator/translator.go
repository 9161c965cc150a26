package translator

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var translationFS embed.FS

var Translator *i18n.Bundle

const (
	LanguageEn = "en"
	LanguageFr = "fr"
)

// InitTranslator builds the message bundle from the embedded TOML catalogs.
// Catalogs are compiled in so the binary localizes regardless of the
// working directory it is launched from.
func InitTranslator() {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := translationFS.ReadDir("translation")
	if err != nil {
		zap.L().Error("failed to read embedded translations", zap.Error(err))
		return
	}

	for _, entry := range entries {
		path := "translation/" + entry.Name()
		if _, err := Translator.LoadMessageFileFS(translationFS, path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", entry.Name()), zap.Error(err))
		}
	}
}
