package params

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func checkRange(d Def, v value) error {
	key := d.Key()
	switch {
	case d.Unit == UnitString:
		return nil
	case len(d.Choices) > 0:
		opts := make([]string, len(d.Choices))
		for i, c := range d.Choices {
			opts[i] = strconv.Itoa(c)
		}
		if err := validate.Var(v.i, "oneof="+strings.Join(opts, " ")); err != nil {
			return Errorf(key, "%d not in %s", v.i, d.Range())
		}
		return nil
	case d.Unit == UnitInteger:
		if err := validate.Var(v.i, rangeTag(d)); err != nil {
			return Errorf(key, "%d out of range %s", v.i, d.Range())
		}
		return nil
	default:
		if math.IsNaN(v.f) {
			return Errorf(key, "not a number")
		}
		if err := validate.Var(v.f, rangeTag(d)); err != nil {
			return Errorf(key, "%g out of range %s", v.f, d.Range())
		}
		return nil
	}
}

func rangeTag(d Def) string {
	return "gte=" + strconv.FormatFloat(d.Min, 'f', -1, 64) +
		",lte=" + strconv.FormatFloat(d.Max, 'f', -1, 64)
}
