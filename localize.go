package jsonflow

import "github.com/kaptinlin/go-i18n"

// Localize renders the error's message using the given localizer, falling
// back to Error() when localizer is nil or the code has no translation.
func (e *PipelineError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Error()
	}
	if s := localizer.Get(e.Code, i18n.Vars(e.Params)); s != "" && s != e.Code {
		return s
	}
	return e.Error()
}
