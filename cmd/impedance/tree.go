package main

import (
	"fmt"
	"impedance/element"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func NewCmdTree(g *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "打印元件树及每个节点的等效电阻",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, err := g.Load(args[0])
			if err != nil {
				return err
			}
			names := make(map[element.ElementFace]string, len(cir.Elements))
			for name, e := range cir.Elements {
				names[e] = name
			}
			printTree(cmd.OutOrStdout(), cir.Root, cir.Power, names)
			return nil
		},
		SilenceUsage: true,
	}
}

// printTree 缩进打印元件树
func printTree(w io.Writer, root element.ElementFace, p element.Power, names map[element.ElementFace]string) {
	element.Walk(root, func(e element.ElementFace, depth int) bool {
		fmt.Fprintf(w, "%s%s = %g\n", strings.Repeat("  ", depth), nodeLabel(e, names[e]), e.CalculateResistance(p))
		return true
	})
}

// nodeLabel 节点描述，如 "R1 R [27]"、"P2 P"
func nodeLabel(e element.ElementFace, name string) string {
	var label string
	switch e := e.(type) {
	case element.LeafFace:
		values := make([]string, len(e.Values()))
		for i, v := range e.Values() {
			values[i] = fmt.Sprintf("%g", v)
		}
		label = fmt.Sprintf("%s [%s]", strings.ToUpper(e.Type().String()), strings.Join(values, ", "))
	case *element.SequentialConnections:
		label = "S"
	case *element.ParallelConnections:
		label = "P"
	case *element.Combined:
		label = "X"
	default:
		label = fmt.Sprintf("%T", e)
	}
	if name == "" {
		return label
	}
	return name + " " + label
}
