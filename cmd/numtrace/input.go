package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numtrace/engine"
)

var errInput = errors.New("invalid input")

// request assembles the Request for method. Only keys that were actually
// set (flag, environment or config file) override the method defaults.
func (a *app) request(method engine.Method) (engine.Request, error) {
	req := engine.NewRequest(method)
	if path := a.v.GetString("input"); path != "" {
		reqs, err := loadRequests(path, method)
		if err != nil {
			return req, err
		}
		if len(reqs) != 1 {
			return req, fmt.Errorf("%w: %s holds %d problems, use \"numtrace run\"", errInput, path, len(reqs))
		}
		if reqs[0].Method != method {
			return req, fmt.Errorf("%w: %s describes a %s problem", errInput, path, reqs[0].Method)
		}
		req = reqs[0]
	}

	var result *multierror.Error
	set := func(key string, apply func() error) {
		if !a.v.IsSet(key) {
			return
		}
		if err := apply(); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", key, err))
		}
	}
	set("equation", func() error {
		req.Equation = a.v.GetString("equation")
		return nil
	})
	set("decimals", func() (err error) {
		req.Decimals, err = cast.ToIntE(a.v.Get("decimals"))
		return err
	})
	set("x0", func() (err error) {
		req.X0, err = cast.ToFloat64E(a.v.Get("x0"))
		return err
	})
	set("x1", func() (err error) {
		req.X1, err = cast.ToFloat64E(a.v.Get("x1"))
		return err
	})
	set("y0", func() (err error) {
		req.Y0, err = cast.ToFloat64E(a.v.Get("y0"))
		return err
	})
	set("h", func() (err error) {
		req.H, err = cast.ToFloat64E(a.v.Get("h"))
		return err
	})
	set("target-x", func() (err error) {
		req.TargetX, err = cast.ToFloat64E(a.v.Get("target-x"))
		return err
	})
	set("tolerance", func() (err error) {
		req.Tolerance, err = cast.ToFloat64E(a.v.Get("tolerance"))
		return err
	})
	set("precision", func() (err error) {
		req.Precision, err = cast.ToIntE(a.v.Get("precision"))
		return err
	})
	set("max-iterations", func() (err error) {
		req.MaxIterations, err = cast.ToIntE(a.v.Get("max-iterations"))
		return err
	})
	set("matrix", func() (err error) {
		req.Matrix, err = toMatrix(a.v.Get("matrix"))
		return err
	})

	return req, result.ErrorOrNil()
}

// toMatrix accepts the flag/env string form or a nested list from the
// config file.
func toMatrix(v any) ([][]float64, error) {
	switch v := v.(type) {
	case string:
		return parseMatrix(v)
	case []any:
		rows := make([][]float64, 0, len(v))
		for i, r := range v {
			cells, err := cast.ToSliceE(r)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
			row := make([]float64, len(cells))
			for j, c := range cells {
				if row[j], err = cast.ToFloat64E(c); err != nil {
					return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
				}
			}
			rows = append(rows, row)
		}
		return rows, nil
	}

	return nil, fmt.Errorf("%w: unsupported matrix value %T", errInput, v)
}

// parseMatrix reads "1,5,1,14; 2,1,3,13". Values may also be separated by
// whitespace. Every malformed value is reported.
func parseMatrix(s string) ([][]float64, error) {
	var rows [][]float64
	var result *multierror.Error
	for i, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				result = multierror.Append(result, fmt.Errorf("%w: row %d, column %d: %q is not a number", errInput, i+1, j+1, f))
				continue
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", errInput)
	}

	return rows, nil
}

// loadRequests decodes a YAML document holding one problem or a list under
// "problems". Each problem starts from its method defaults; fallback is used
// when a problem omits "method".
func loadRequests(path string, fallback engine.Method) ([]engine.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", errInput, path)
	}

	items := []*yaml.Node{doc.Content[0]}
	if list := mappingValue(doc.Content[0], "problems"); list != nil {
		if list.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: %s:%d: problems must be a list", errInput, path, list.Line)
		}
		items = list.Content
	}

	var result *multierror.Error
	reqs := make([]engine.Request, 0, len(items))
	for i, item := range items {
		req, err := decodeRequest(item, fallback)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s:%d: problem %d: %w", path, item.Line, i+1, err))
			continue
		}
		reqs = append(reqs, req)
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return reqs, nil
}

func decodeRequest(node *yaml.Node, fallback engine.Method) (engine.Request, error) {
	if node.Kind != yaml.MappingNode {
		return engine.Request{}, fmt.Errorf("%w: expected a mapping", errInput)
	}
	method := fallback
	if v := mappingValue(node, "method"); v != nil {
		m, err := engine.ParseMethod(v.Value)
		if err != nil {
			return engine.Request{}, err
		}
		method = m
	}
	if method == "" {
		return engine.Request{}, fmt.Errorf("%w: method is required", errInput)
	}

	// Config and flag keys are hyphenated; accept the snake_case spelling too.
	for i := 0; i+1 < len(node.Content); i += 2 {
		node.Content[i].Value = strings.ReplaceAll(node.Content[i].Value, "_", "-")
	}

	req := engine.NewRequest(method)
	if err := node.Decode(&req); err != nil {
		return engine.Request{}, err
	}
	req.Method = method

	return req, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
