// Package batch sweeps a suite of generation parameters and writes one
// instance file per combination.
package batch

import (
	"fmt"
	"strconv"

	"github.com/elektrokombinacija/mapf-lp-gen/internal/config"
	"github.com/elektrokombinacija/mapf-lp-gen/internal/core"
)

// Ext is the instance file extension.
const Ext = ".lp"

// Stem names a run without extension, e.g. 004_random_8x8_a10_p10_1 or
// 120_warehouse_15x15_a16_0.
func Stem(r config.Run) string {
	p := r.Params
	if p.Mode == core.ModeWarehouse {
		return fmt.Sprintf("%03d_%s_%dx%d_a%d_%d", r.Index, p.Mode, p.Width, p.Height, p.NumAgents, r.Repetition)
	}
	return fmt.Sprintf("%03d_%s_%dx%d_a%d_p%s_%d", r.Index, p.Mode, p.Width, p.Height, p.NumAgents,
		strconv.FormatFloat(p.ObstaclePercentage, 'f', -1, 64), r.Repetition)
}

// FileName is Stem plus the instance extension.
func FileName(r config.Run) string {
	return Stem(r) + Ext
}
