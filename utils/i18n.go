package utils

import (
	"embed"
	"encoding/json"
	"io/fs"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// DefaultLanguage is the language of the app's primary audience.
const DefaultLanguage = "ru"

//go:embed i18n/*.json
var messageFiles embed.FS

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
	bundleErr  error
)

// InitI18NBundle loads the embedded translation files. It is safe to call
// more than once.
func InitI18NBundle() error {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.Russian)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		files, err := fs.Glob(messageFiles, "i18n/*.json")
		if err != nil {
			bundleErr = err
			return
		}
		for _, f := range files {
			if _, err := b.LoadMessageFileFS(messageFiles, f); err != nil {
				bundleErr = err
				return
			}
		}
		bundle = b
	})
	return bundleErr
}

// NewLocalizer returns a localizer for lang, falling back to the default language.
func NewLocalizer(lang string) *i18n.Localizer {
	if err := InitI18NBundle(); err != nil {
		log.WithError(err).Error("fail to load i18n bundle")
	}

	lang = strings.ReplaceAll(strings.ToLower(lang), "_", "-")
	if lang == "" {
		lang = DefaultLanguage
	}
	return i18n.NewLocalizer(bundle, lang, DefaultLanguage)
}

// Translate localizes messageID with optional template data. The message id
// is returned when no translation can be resolved.
func Translate(lang, messageID string, data map[string]interface{}) string {
	msg, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		log.WithField("message_id", messageID).WithError(err).Warn("fail to localize message")
		return messageID
	}
	return msg
}
