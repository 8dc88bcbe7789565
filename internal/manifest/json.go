// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"

	"github.com/tidwall/gjson"
)

func decodeJSON(data []byte) ([]Definition, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON")
	}

	targets := gjson.GetBytes(data, "targets")
	if !targets.IsArray() {
		return nil, fmt.Errorf(`missing "targets" array`)
	}

	var defs []Definition
	targets.ForEach(func(_, t gjson.Result) bool {
		d := Definition{
			Name:     t.Get("name").String(),
			Category: t.Get("category").String(),
			Usage:    t.Get("usage").String(),
		}
		t.Get("guards").ForEach(func(_, g gjson.Result) bool {
			d.Guards = append(d.Guards, g.String())
			return true
		})
		t.Get("steps").ForEach(func(_, s gjson.Result) bool {
			d.Steps = append(d.Steps, s.String())
			return true
		})
		defs = append(defs, d)
		return true
	})
	return defs, nil
}
