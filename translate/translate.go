// Package translate formats user facing assembler messages for the
// current locale.
package translate

import (
	"errors"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer = newPrinter()

// newPrinter selects the best matching language from the user locales,
// falling back to en-US.
func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("avasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Error returns a new error with a translated message.
func Error(key message.Reference, args ...any) error {
	return errors.New(From(key, args...))
}
