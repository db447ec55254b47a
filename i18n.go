package jsonflow

import (
	"embed"
	"sync"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

var (
	defaultBundle     *i18n.I18n
	defaultBundleOnce sync.Once
	defaultBundleErr  error
)

// GetI18n returns the package-wide internationalization bundle, loading the
// embedded locale files on first use.
func GetI18n() (*i18n.I18n, error) {
	defaultBundleOnce.Do(func() {
		defaultBundle = i18n.NewBundle(
			i18n.WithDefaultLocale("en"),
			i18n.WithLocales("en", "zh-Hans"),
		)
		defaultBundleErr = defaultBundle.LoadFS(localesFS, "locales/*.json")
	})
	return defaultBundle, defaultBundleErr
}

// Localizer produces localized strings for a single locale.
func Localizer(locale string) (*i18n.Localizer, error) {
	bundle, err := GetI18n()
	if err != nil {
		return nil, err
	}
	return bundle.NewLocalizer(locale), nil
}
