//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-emissions/arena"
	"github.com/cwbudde/algo-emissions/bench"
	"github.com/cwbudde/algo-emissions/engine"
)

var (
	eng   *engine.Engine
	funcs []js.Func
)

func main() {
	eng = engine.New()

	api := js.Global().Get("Object").New()
	api.Set("init", export(func(_ []js.Value) any {
		eng.Init()
		return js.Null()
	}))

	api.Set("close", export(func(_ []js.Value) any {
		eng.Close()
		return js.Null()
	}))

	api.Set("acquire", export(func(args []js.Value) any {
		if len(args) < 1 || args[0].Type() != js.TypeNumber || args[0].Int() < 0 {
			return js.Null()
		}
		return handleValue(eng.Acquire(args[0].Int()))
	}))

	api.Set("release", export(func(args []js.Value) any {
		if len(args) < 2 {
			return "release: want (handle, count)"
		}
		h, err := resolve(args[0])
		if err != nil {
			return err.Error()
		}
		if args[1].Type() != js.TypeNumber {
			return "release: count must be a number"
		}
		if err := eng.Release(h, args[1].Int()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("write", export(func(args []js.Value) any {
		if len(args) < 2 {
			return "write: want (handle, values[, offset])"
		}
		h, err := resolve(args[0])
		if err != nil {
			return err.Error()
		}
		offset := 0
		if len(args) > 2 && args[2].Type() == js.TypeNumber {
			offset = args[2].Int()
		}
		if args[1].Type() != js.TypeObject || args[1].Get("length").Type() != js.TypeNumber {
			return "write: values must be an array"
		}
		n := args[1].Length()
		if n < 0 {
			return "write: values must be an array"
		}
		src := make([]float64, n)
		for i := range src {
			item := args[1].Index(i)
			if item.Type() != js.TypeNumber {
				return "write: values must be numbers"
			}
			src[i] = item.Float()
		}
		if err := eng.Write(h, offset, src); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("read", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.Global().Get("Float64Array").New(0)
		}
		h, err := resolve(args[0])
		if err != nil {
			return js.Global().Get("Float64Array").New(0)
		}
		vals, _ := eng.Values(h)
		arr := js.Global().Get("Float64Array").New(len(vals))
		for i, v := range vals {
			arr.SetIndex(i, v)
		}
		return arr
	}))

	api.Set("calculateEmissionsBatch", exportTernary(eng.BatchMultiply))
	api.Set("calculateTransportEmissions", exportTernary(eng.TransportEmissions))
	api.Set("calculateEnergyEmissions", exportTernary(eng.EnergyEmissions))
	api.Set("vectorAdd", exportTernary(eng.VectorAdd))
	api.Set("vectorMultiply", exportTernary(eng.VectorMultiply))

	api.Set("calculateAIEmissions", export(func(args []js.Value) any {
		hs, ok := resolveAll(args, 4)
		if !ok {
			return false
		}
		return eng.AIEmissions(hs[0], hs[1], hs[2], hs[3])
	}))

	api.Set("vectorScale", export(func(args []js.Value) any {
		if len(args) < 2 || args[1].Type() != js.TypeNumber {
			return false
		}
		h, err := resolve(args[0])
		if err != nil {
			return false
		}
		return eng.VectorScale(h, args[1].Float())
	}))

	api.Set("vectorSum", exportReduction(eng.VectorSum))
	api.Set("vectorAverage", exportReduction(eng.VectorAverage))
	api.Set("vectorMin", exportReduction(eng.VectorMin))
	api.Set("vectorMax", exportReduction(eng.VectorMax))

	api.Set("weightedAverage", export(func(args []js.Value) any {
		hs, ok := resolveAll(args, 2)
		if !ok {
			return 0.0
		}
		return eng.WeightedAverage(hs[0], hs[1])
	}))

	api.Set("benchmarkCalculation", export(func(args []js.Value) any {
		if len(args) < 2 || args[0].Type() != js.TypeNumber || args[1].Type() != js.TypeNumber {
			return 0.0
		}
		return bench.Run(args[0].Int(), args[1].Int(), bench.WithClock(jsClock{})).Milliseconds()
	}))

	registerSummary(api)

	js.Global().Set("AlgoEmissions", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func exportTernary(fn func(a, b, out arena.Handle) bool) js.Func {
	return export(func(args []js.Value) any {
		hs, ok := resolveAll(args, 3)
		if !ok {
			return false
		}
		return fn(hs[0], hs[1], hs[2])
	})
}

func exportReduction(fn func(arena.Handle) float64) js.Func {
	return export(func(args []js.Value) any {
		if len(args) < 1 {
			return fn(arena.Handle{})
		}
		h, _ := resolve(args[0])
		return fn(h)
	})
}

func handleValue(h arena.Handle) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("slot", h.Slot())
	obj.Set("gen", h.Generation())
	obj.Set("len", h.Len())
	return obj
}

// resolve turns a {slot, gen} object from the host back into a Handle.
// Anything else is reported as stale rather than panicking.
func resolve(v js.Value) (arena.Handle, error) {
	if v.Type() != js.TypeObject {
		return arena.Handle{}, arena.ErrStaleHandle
	}
	slot, gen := v.Get("slot"), v.Get("gen")
	if slot.Type() != js.TypeNumber || gen.Type() != js.TypeNumber {
		return arena.Handle{}, arena.ErrStaleHandle
	}
	return eng.Arena().ResolveNumbers(slot.Float(), gen.Float())
}

func resolveAll(args []js.Value, n int) ([]arena.Handle, bool) {
	if len(args) < n {
		return nil, false
	}
	hs := make([]arena.Handle, n)
	for i := range hs {
		h, err := resolve(args[i])
		if err != nil {
			return nil, false
		}
		hs[i] = h
	}
	return hs, true
}
