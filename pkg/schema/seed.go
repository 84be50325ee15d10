package schema

import (
	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/registry"
)

// Registrar is the registration surface of a registry.
type Registrar interface {
	DefineBool(name string, defaultValue bool) error
	DefineNumeric(name string, defaultValue, lower, upper, step float64) error
	DefineString(name, defaultValue string, possibilities []string) error
	SetDescription(name, text string) error
}

var _ Registrar = (*registry.Registry)(nil)

// Seed validates defs and registers every parameter they declare. Nothing is
// registered when validation fails; registration stops at the first name that
// conflicts with a parameter already in reg.
func Seed(reg Registrar, defs []Definition) error {
	if err := Validate(defs); err != nil {
		return err
	}

	for _, def := range defs {
		kind, _ := domain.ParseKind(def.Type)
		var err error
		switch kind {
		case domain.KindBool:
			err = reg.DefineBool(def.Name, def.Default.(bool))
		case domain.KindNumeric:
			v, _ := toFloat(def.Default)
			var step float64
			if def.Step != nil {
				step = *def.Step
			}
			err = reg.DefineNumeric(def.Name, v, *def.Min, *def.Max, step)
		case domain.KindString:
			err = reg.DefineString(def.Name, def.Default.(string), def.Options)
		}
		if err != nil {
			return err
		}
		if def.Description != "" {
			if err := reg.SetDescription(def.Name, def.Description); err != nil {
				return err
			}
		}
	}
	return nil
}

// Describe exports a registry as definitions, in name order, using each
// parameter's current value as its default.
func Describe(reg *registry.Registry) []Definition {
	infos := reg.Infos()
	defs := make([]Definition, 0, len(infos))
	for _, info := range infos {
		defs = append(defs, Definition{
			Name:        info.Name,
			Type:        string(info.Kind),
			Default:     info.Value,
			Min:         info.Min,
			Max:         info.Max,
			Step:        info.Step,
			Options:     info.Options,
			Description: info.Description,
		})
	}
	return defs
}
