package main

import (
	"fmt"
	"strings"
)

// FormatResult produces calculator-style text output for a solved garden:
// the current plots, the optimal expected value, the recommended first
// pick, and the suggested harvest order.
func FormatResult(g *Garden, res *SearchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "当前菜地：%d 块田 / %d 颗种子\n", fieldCount(g.Plots), len(g.Plots))
	for _, p := range g.Plots {
		fmt.Fprintf(&b, "  %s %s Lv%d\n", p.PlotID, p.Color, p.Level)
	}

	fmt.Fprintf(&b, "期望总收益：%.2f\n", res.MaxEV)
	if res.HasMove {
		fmt.Fprintf(&b, "推荐首摘：%s\n", res.BestMove)
	}
	if len(res.Path) > 0 {
		b.WriteString("收获顺序：\n")
		for i, step := range res.Path {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
		}
	}

	return b.String()
}
