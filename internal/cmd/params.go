package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/Alia5/antennagen/footprint"
)

// Params lists the parameters a wizard accepts.
type Params struct {
	Wizard string `arg:"" name:"wizard" help:"Wizard to describe" enum:"rectangular,spiral"`
}

// Run is called by Kong when the params command is executed.
func (p *Params) Run() error {
	return p.write(os.Stdout)
}

func (p *Params) write(w io.Writer) error {
	wiz := footprint.GetWizard(p.Wizard)
	if wiz == nil {
		return fmt.Errorf("unknown wizard: %s", p.Wizard)
	}

	fmt.Fprintf(w, "%s: %s\n\n", wiz.Name, wiz.Description)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tUNIT\tDEFAULT\tRANGE\tDESCRIPTION")
	for _, d := range wiz.Params {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\t%s\n", d.Key(), d.Unit, d.Default, d.Range(), d.Help)
	}
	return tw.Flush()
}
