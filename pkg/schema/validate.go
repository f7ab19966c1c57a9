package schema

// Values is the read side of a parameter set.
type Values interface {
	Get(name string) (any, bool)
}

// Map adapts a plain map to Values.
type Map map[string]any

// Get implements Values.
func (m Map) Get(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Check lints values against the type hints of the declared parameters.
// Absent parameters are never an error since every parameter is optional,
// and values for undeclared names are ignored.
func (s *Schema) Check(values Values) error {
	var errs []error

	for _, p := range s.params {
		value, exists := values.Get(p.Name)
		if !exists {
			continue
		}

		if err := p.Type.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    p.Name,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}
