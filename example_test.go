package knobs_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/aretw0/knobs"
	"github.com/aretw0/knobs/pkg/domain"
	"github.com/aretw0/knobs/pkg/registry"
)

// ExampleLoad registers parameters in code and applies command-line style arguments.
// Invalid assignments are skipped and the previous value is kept.
func ExampleLoad() {
	reg, err := knobs.Load(
		[]string{"threshold=0.8", "threshold=5.0", "mode=accurate", "unknown=5"},
		knobs.WithSeed(func(r *registry.Registry) error {
			if err := r.DefineNumeric("threshold", 0.5, 0, 1, 0.1); err != nil {
				return err
			}
			return r.DefineString("mode", "fast", []string{"fast", "accurate"})
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	threshold, _ := reg.Param("threshold")
	mode, _ := reg.ParamStr("mode")
	fmt.Println(threshold, mode)

	_, err = reg.ParamBool("nonexistent")
	fmt.Println(errors.Is(err, domain.ErrUnknownParameter))

	// Output:
	// 0.8 accurate
	// true
}
