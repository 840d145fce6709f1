package main

import (
	"fmt"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/scene2d"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			if w.Adjusted != nil {
				fmt.Printf("    adjusted: %v\n", w.Adjusted)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printFloorSummary(scenes []*scene2d.Scene2D, units string) {
	fmt.Printf("%-14s %6s %6s %8s %12s %16s\n",
		"Floor", "Rooms", "Doors", "Windows", "Area", "Envelope")
	fmt.Printf("%-14s %6s %6s %8s %12s %16s\n",
		"--------------", "------", "------", "--------", "------------", "----------------")

	for _, sc := range scenes {
		m := sc.Metadata
		envelope := "-"
		if sc.Envelope != nil {
			envelope = fmt.Sprintf("%s x %s", formatLength(sc.Envelope.Width()), formatLength(sc.Envelope.Height()))
		}
		fmt.Printf("%-14s %6d %6d %8d %12s %16s\n",
			m.Floor, m.RoomCount, m.DoorCount, m.WindowCount, formatArea(m.TotalArea, units), envelope)
	}
}

func formatLength(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func formatArea(v float64, units string) string {
	if units == "" {
		return formatLength(v)
	}
	return fmt.Sprintf("%s sq %s", formatLength(v), units)
}
