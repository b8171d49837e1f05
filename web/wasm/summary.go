//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-emissions/stats"
)

var (
	summaries = map[int]*stats.StreamingSummary{}
	nextSumID  = 1
)

func registerSummary(api js.Value) {
	api.Set("summary", export(func(args []js.Value) any {
		if len(args) < 1 {
			return summaryValue(stats.Calculate(nil))
		}
		h, _ := resolve(args[0])
		return summaryValue(eng.Summary(h))
	}))

	api.Set("summaryOpen", export(func(_ []js.Value) any {
		id := nextSumID
		nextSumID++
		summaries[id] = stats.NewStreamingSummary()
		return id
	}))

	api.Set("summaryUpdate", export(func(args []js.Value) any {
		if len(args) < 2 {
			return false
		}
		s, ok := lookupSummary(args[0])
		if !ok {
			return false
		}
		h, err := resolve(args[1])
		if err != nil {
			return false
		}
		return eng.Accumulate(s, h)
	}))

	api.Set("summaryResult", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Null()
		}
		s, ok := lookupSummary(args[0])
		if !ok {
			return js.Null()
		}
		return summaryValue(s.Result())
	}))

	api.Set("summaryClose", export(func(args []js.Value) any {
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			delete(summaries, args[0].Int())
		}
		return js.Null()
	}))
}

func lookupSummary(v js.Value) (*stats.StreamingSummary, bool) {
	if v.Type() != js.TypeNumber {
		return nil, false
	}
	s, ok := summaries[v.Int()]
	return s, ok
}

func summaryValue(s stats.Summary) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("length", s.Length)
	obj.Set("sum", s.Sum)
	obj.Set("mean", s.Mean)
	obj.Set("min", s.Min)
	obj.Set("minPos", s.MinPos)
	obj.Set("max", s.Max)
	obj.Set("maxPos", s.MaxPos)
	obj.Set("range", s.Range)
	return obj
}
