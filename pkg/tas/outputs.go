package tas

import "github.com/mas-protocol/mas-go/pkg/convert"

// LossBreakdown itemizes converter losses by mechanism, in watts. The
// encoded form carries a derived "total" key which is recomputed, never
// read back, so a stale total in the input cannot drift the round trip.
type LossBreakdown struct {
	CoreLoss         float64
	WindingLoss      float64
	SwitchConduction float64
	SwitchSwitching  float64
	DiodeConduction  float64
	CapacitorESR     float64
}

// Total is the sum of all loss mechanisms.
func (l LossBreakdown) Total() float64 {
	return l.CoreLoss + l.WindingLoss + l.SwitchConduction +
		l.SwitchSwitching + l.DiodeConduction + l.CapacitorESR
}

func decodeLossBreakdown(p convert.Path, v any) (LossBreakdown, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return LossBreakdown{}, err
	}
	var out LossBreakdown
	if out.CoreLoss, err = defFloat(m, p, "core_loss", 0); err != nil {
		return LossBreakdown{}, err
	}
	if out.WindingLoss, err = defFloat(m, p, "winding_loss", 0); err != nil {
		return LossBreakdown{}, err
	}
	if out.SwitchConduction, err = defFloat(m, p, "switch_conduction", 0); err != nil {
		return LossBreakdown{}, err
	}
	if out.SwitchSwitching, err = defFloat(m, p, "switch_switching", 0); err != nil {
		return LossBreakdown{}, err
	}
	if out.DiodeConduction, err = defFloat(m, p, "diode_conduction", 0); err != nil {
		return LossBreakdown{}, err
	}
	if out.CapacitorESR, err = defFloat(m, p, "capacitor_esr", 0); err != nil {
		return LossBreakdown{}, err
	}
	return out, nil
}

func (l LossBreakdown) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("core_loss", l.CoreLoss)
	m.Set("winding_loss", l.WindingLoss)
	m.Set("switch_conduction", l.SwitchConduction)
	m.Set("switch_switching", l.SwitchSwitching)
	m.Set("diode_conduction", l.DiodeConduction)
	m.Set("capacitor_esr", l.CapacitorESR)
	m.Set("total", l.Total())
	return m
}

// KPIs are the key performance indicators of a design.
type KPIs struct {
	Efficiency   float64
	PowerDensity *float64
	Cost         *float64
}

func decodeKPIs(p convert.Path, v any) (KPIs, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return KPIs{}, err
	}
	var out KPIs
	if out.Efficiency, err = defFloat(m, p, "efficiency", 0); err != nil {
		return KPIs{}, err
	}
	if out.PowerDensity, err = convert.Opt(m, p, "power_density", convert.Float); err != nil {
		return KPIs{}, err
	}
	if out.Cost, err = convert.Opt(m, p, "cost", convert.Float); err != nil {
		return KPIs{}, err
	}
	return out, nil
}

func (k KPIs) encode() *convert.Map {
	m := convert.NewMap()
	m.Set("efficiency", k.Efficiency)
	convert.Put(m, "power_density", k.PowerDensity)
	convert.Put(m, "cost", k.Cost)
	return m
}

// Outputs is the results section of a TAS document.
type Outputs struct {
	Losses *LossBreakdown
	KPIs   *KPIs
	Notes  string
}

func decodeOutputs(p convert.Path, v any) (Outputs, error) {
	m, err := convert.Object(p, v)
	if err != nil {
		return Outputs{}, err
	}
	var out Outputs
	if out.Losses, err = convert.Opt(m, p, "losses", decodeLossBreakdown); err != nil {
		return Outputs{}, err
	}
	if out.KPIs, err = convert.Opt(m, p, "kpis", decodeKPIs); err != nil {
		return Outputs{}, err
	}
	if out.Notes, err = defString(m, p, "notes", ""); err != nil {
		return Outputs{}, err
	}
	return out, nil
}

func (o Outputs) encode() *convert.Map {
	m := convert.NewMap()
	if o.Losses != nil {
		m.Set("losses", o.Losses.encode())
	}
	if o.KPIs != nil {
		m.Set("kpis", o.KPIs.encode())
	}
	putText(m, "notes", o.Notes)
	return m
}
