package scoring

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meal is the numeric input to the scoring formula.
type Meal struct {
	Calories    float64 `json:"calories" yaml:"calories"`
	Protein     float64 `json:"protein" yaml:"protein"`
	Fiber       float64 `json:"fiber" yaml:"fiber"`
	ScaleFactor float64 `json:"scale_factor" yaml:"scale_factor"`
}

// MarshalJSON writes the meal with non-finite amounts as null; YAML
// decoding can produce them (.nan, .inf) and the input is echoed back.
func (m Meal) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Calories    Value `json:"calories"`
		Protein     Value `json:"protein"`
		Fiber       Value `json:"fiber"`
		ScaleFactor Value `json:"scale_factor"`
	}{
		Calories:    Value(m.Calories),
		Protein:     Value(m.Protein),
		Fiber:       Value(m.Fiber),
		ScaleFactor: Value(m.ScaleFactor),
	})
}

// rawMeal tracks field presence while decoding. scaleFactor is accepted as
// an alias of scale_factor; the snake_case key wins when both are set.
type rawMeal struct {
	Calories         *float64 `json:"calories" yaml:"calories"`
	Protein          *float64 `json:"protein" yaml:"protein"`
	Fiber            *float64 `json:"fiber" yaml:"fiber"`
	ScaleFactor      *float64 `json:"scale_factor" yaml:"scale_factor"`
	ScaleFactorCamel *float64 `json:"scaleFactor" yaml:"scaleFactor"`
}

func (r rawMeal) meal() (Meal, error) {
	scale := r.ScaleFactor
	if scale == nil {
		scale = r.ScaleFactorCamel
	}

	var missing []string
	if r.Calories == nil {
		missing = append(missing, "calories")
	}
	if r.Protein == nil {
		missing = append(missing, "protein")
	}
	if r.Fiber == nil {
		missing = append(missing, "fiber")
	}
	if scale == nil {
		missing = append(missing, "scale_factor")
	}
	if len(missing) > 0 {
		return Meal{}, fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
	}

	return Meal{
		Calories:    *r.Calories,
		Protein:     *r.Protein,
		Fiber:       *r.Fiber,
		ScaleFactor: *scale,
	}, nil
}

// UnmarshalJSON decodes a meal and requires all four numeric fields.
// Unknown fields are ignored.
func (m *Meal) UnmarshalJSON(data []byte) error {
	var raw rawMeal
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	meal, err := raw.meal()
	if err != nil {
		return err
	}
	*m = meal
	return nil
}

// UnmarshalYAML decodes a meal and requires all four numeric fields.
func (m *Meal) UnmarshalYAML(value *yaml.Node) error {
	var raw rawMeal
	if err := value.Decode(&raw); err != nil {
		return err
	}
	meal, err := raw.meal()
	if err != nil {
		return err
	}
	*m = meal
	return nil
}
