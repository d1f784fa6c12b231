package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/cal/pkg/render"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Format string

	// Out receives JSON errors, color.Output when nil.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output errors as JSON.")
}

func AddFormatArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Format, "output", "o", "",
		fmt.Sprintf("Output format. One of %s.", formatNames()))
}

// Renderer picks the renderer for the --output flag, falling back to def
// when the flag was not given.
func (o *OutputOptions) Renderer(def string) (render.Renderer, error) {
	name := o.Format
	if name == "" {
		name = def
	}
	f, err := render.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return render.New(f)
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		w := o.Out
		if w == nil {
			w = color.Output
		}
		_, _ = fmt.Fprintln(w, string(b))
		return nil
	}
	return err
}

func formatNames() string {
	s := ""
	for i, f := range render.Formats() {
		if i > 0 {
			s += ", "
		}
		s += "'" + string(f) + "'"
	}
	return s
}
