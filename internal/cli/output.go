package cli

import (
	"fmt"
	"io"

	"github.com/ppiankov/svcprofile/internal/api"
	"github.com/ppiankov/svcprofile/internal/render"
)

// writeComputed prints a scored input as text or json.
func writeComputed(w io.Writer, format string, c *api.ComputeReply) error {
	rep := render.NewReport(c.Input, c.Result)
	switch format {
	case "json":
		out, err := render.FormatJSON(rep)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case "text", "":
		_, err := io.WriteString(w, render.FormatText(rep))
		return err
	default:
		return fmt.Errorf("unknown format %q: use text or json", format)
	}
}

func validFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q: use text or json", format)
	}
}
