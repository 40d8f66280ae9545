package main

import (
	"fmt"
	"math"
	"math/big"
	"os"
	"text/tabwriter"

	"github.com/rpgo/numfmt/internal/config"
	"github.com/rpgo/numfmt/internal/domain"
	"github.com/rpgo/numfmt/pkg/numfmt"
)

func main() {
	locales := []string{"en-US", "en-IN", "de-DE", "de-CH", "fr-FR", "sv-SE", "es-ES", "ar-EG", "hi-IN", "ja-JP"}
	if len(os.Args) > 1 {
		locales = os.Args[1:]
	}

	big30, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	values := []any{1234.5, -1234567.891, 0.1, math.Copysign(0, -1), 1234, big30}

	engine := numfmt.NewCLDREngine(nil)
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "LOCALE")
	for _, v := range values {
		normalized, _ := numfmt.FormatToNormalizedForm(v)
		fmt.Fprintf(tw, "\t%s", normalized)
	}
	fmt.Fprintln(tw)

	for _, locale := range locales {
		opts, err := config.Derive(domain.Profile{Locale: locale}, engine)
		if err != nil {
			fmt.Fprintf(tw, "%s\t%v\n", locale, err)
			continue
		}
		f := numfmt.NewFormatterWithEngine(engine, opts)
		fmt.Fprint(tw, locale)
		for _, v := range values {
			out, err := f.Format(v)
			if err != nil {
				out = "!" + err.Error()
			}
			fmt.Fprintf(tw, "\t%s", out)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
