package commands

import (
	"fmt"
	"io"

	"github.com/zoobzio/panel"
)

// printUnits writes one block per render unit, in order.
func printUnits(w io.Writer, units []panel.RenderUnit) {
	fmt.Fprintln(w, "---")
	if len(units) == 0 {
		fmt.Fprintln(w, "(empty)")
		return
	}
	for i, u := range units {
		switch u.Kind {
		case panel.KindText:
			fmt.Fprintf(w, "%d. [%s] %s\n", i+1, u.Name(), u.Text.Text)
		case panel.KindPicture:
			fmt.Fprintf(w, "%d. [%s] %s <%s>\n", i+1, u.Name(), u.Picture.Text, u.Picture.URL)
		case panel.KindSelector:
			fmt.Fprintf(w, "%d. [%s]\n", i+1, u.Name())
			printVariants(w, u.Selector)
		}
	}
}

func printVariants(w io.Writer, s panel.SelectorWidget) {
	selected := s.SelectedID.Value()
	for _, v := range s.Variants {
		mark := " "
		if v.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(w, "   %s %d. %s\n", mark, v.ID, v.Text)
	}
	if _, ok := s.Selected(); !ok {
		fmt.Fprintf(w, "   (selection %d has no variant)\n", selected)
	}
}
