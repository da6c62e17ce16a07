package di

import (
	"bevlog/internal/i18n"
	"bevlog/internal/structures"
)

func ProvideBundle(conf *structures.Config) *i18n.Bundle {
	return i18n.NewBundle(conf.Tracking.DefaultLanguage)
}
