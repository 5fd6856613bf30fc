// Package translate formats user facing messages in the user's language.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

const defaultLocale = "en-US"

var (
	printerOnce sync.Once
	printer     *message.Printer
)

// languages returns the preferred locales of the user, most preferred first.
func languages() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("mipsasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{defaultLocale}
	}

	return locales
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(func() {
		printer = message.NewPrinter(message.MatchLanguage(languages()...))
	})

	return printer.Sprintf(key, args...)
}
