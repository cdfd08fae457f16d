package loader

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/industrialist-calc/internal/models"
)

//go:embed data/tables.yaml
var embeddedTables []byte

// TablesYAML represents the YAML structure of the lookup tables
type TablesYAML struct {
	Resources  []ResourceYAML  `yaml:"resources" validate:"required,min=1,dive"`
	DrillHeads []DrillHeadYAML `yaml:"drill_heads" validate:"required,min=1,dive"`
	Acids      []AcidYAML      `yaml:"acids" validate:"required,min=1,dive"`
	Oils       []OilYAML       `yaml:"oils" validate:"required,min=1,dive"`
	Depths     []DepthYAML     `yaml:"depths" validate:"required,min=1,dive"`
}

type ResourceYAML struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name" validate:"required"`
}

// CurveYAML is the serialized form of models.Curve
type CurveYAML struct {
	Kind   string          `yaml:"kind" validate:"required,oneof=constant table"`
	Value  float64         `yaml:"value" validate:"required_if=Kind constant,gte=0"`
	Points map[int]float64 `yaml:"points" validate:"required_if=Kind table,dive,gt=0"`
}

type DrillHeadYAML struct {
	ID               string    `yaml:"id" validate:"required"`
	ClassName        string    `yaml:"class_name" validate:"required"`
	DropdownText     string    `yaml:"dropdown_text" validate:"required"`
	InfoText         string    `yaml:"info_text" validate:"required"`
	MaterialInfoText string    `yaml:"material_info_text" validate:"required"`
	MaterialAmount   float64   `yaml:"material_amount" validate:"gt=0"`
	Multiplier       CurveYAML `yaml:"multiplier"`
}

type AcidYAML struct {
	ID           string    `yaml:"id" validate:"required"`
	ClassName    string    `yaml:"class_name" validate:"required"`
	DropdownText string    `yaml:"dropdown_text" validate:"required"`
	InfoText     string    `yaml:"info_text" validate:"required"`
	Rate         float64   `yaml:"rate" validate:"gte=0"`
	Multiplier   CurveYAML `yaml:"multiplier"`
}

type OilYAML struct {
	ID           string  `yaml:"id" validate:"required"`
	ClassName    string  `yaml:"class_name" validate:"required"`
	DropdownText string  `yaml:"dropdown_text" validate:"required"`
	InfoText     string  `yaml:"info_text" validate:"required"`
	Rate         float64 `yaml:"rate" validate:"gte=0"`
}

type DepthYAML struct {
	Depth  int         `yaml:"depth" validate:"gt=0"`
	Yields []YieldYAML `yaml:"yields" validate:"max=4,dive"`
}

type YieldYAML struct {
	Resource string  `yaml:"resource" validate:"required"`
	Amount   float64 `yaml:"amount" validate:"gt=0"`
}

var defaultTables = sync.OnceValue(func() *models.Tables {
	t, err := Decode(embeddedTables)
	if err != nil {
		panic(fmt.Sprintf("embedded lookup tables are invalid: %v", err))
	}
	return t
})

// Default returns the tables compiled into the binary.
// They are decoded on first use and shared afterwards.
func Default() *models.Tables {
	return defaultTables()
}

// Decode parses, validates and indexes a YAML table document
func Decode(data []byte) (*models.Tables, error) {
	var raw TablesYAML
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse tables: %w", err)
	}

	if err := validator.New().Struct(&raw); err != nil {
		return nil, formatValidationError(err)
	}

	tables, err := models.NewTables(
		convertResources(raw.Resources),
		convertDrillHeads(raw.DrillHeads),
		convertAcids(raw.Acids),
		convertOils(raw.Oils),
		convertDepths(raw.Depths),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to index tables: %w", err)
	}

	if err := checkReferences(tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func convertCurve(c CurveYAML) models.Curve {
	if models.CurveKind(c.Kind) == models.CurveConstant {
		return models.ConstantCurve(c.Value)
	}
	points := make(map[models.DepthID]float64, len(c.Points))
	for d, v := range c.Points {
		points[models.DepthID(d)] = v
	}
	return models.TableCurve(points)
}

func convertResources(raw []ResourceYAML) []models.Resource {
	out := make([]models.Resource, len(raw))
	for i, r := range raw {
		out[i] = models.Resource{ID: models.ResourceID(r.ID), Name: r.Name}
	}
	return out
}

func convertDrillHeads(raw []DrillHeadYAML) []models.DrillHead {
	out := make([]models.DrillHead, len(raw))
	for i, h := range raw {
		out[i] = models.DrillHead{
			ID:               models.DrillHeadID(h.ID),
			ClassName:        h.ClassName,
			DropdownText:     h.DropdownText,
			InfoText:         h.InfoText,
			MaterialInfoText: h.MaterialInfoText,
			MaterialAmount:   h.MaterialAmount,
			Multi:            convertCurve(h.Multiplier),
		}
	}
	return out
}

func convertAcids(raw []AcidYAML) []models.Acid {
	out := make([]models.Acid, len(raw))
	for i, a := range raw {
		out[i] = models.Acid{
			ID:           models.AcidID(a.ID),
			ClassName:    a.ClassName,
			DropdownText: a.DropdownText,
			InfoText:     a.InfoText,
			Rate:         a.Rate,
			Multi:        convertCurve(a.Multiplier),
		}
	}
	return out
}

func convertOils(raw []OilYAML) []models.Oil {
	out := make([]models.Oil, len(raw))
	for i, o := range raw {
		out[i] = models.Oil{
			ID:           models.OilID(o.ID),
			ClassName:    o.ClassName,
			DropdownText: o.DropdownText,
			InfoText:     o.InfoText,
			Rate:         o.Rate,
		}
	}
	return out
}

func convertDepths(raw []DepthYAML) []models.Depth {
	out := make([]models.Depth, len(raw))
	for i, d := range raw {
		yields := make([]models.DepthYield, len(d.Yields))
		for j, y := range d.Yields {
			yields[j] = models.DepthYield{Resource: models.ResourceID(y.Resource), Amount: y.Amount}
		}
		out[i] = models.Depth{ID: models.DepthID(d.Depth), Yields: yields}
	}
	return out
}

// checkReferences makes every valid selection computable:
// yields name known resources and every curve covers every multiplier depth.
func checkReferences(t *models.Tables) error {
	var errs []error
	for _, d := range t.Depths() {
		for _, y := range d.Yields {
			if _, ok := t.LookupResource(y.Resource); !ok {
				errs = append(errs, fmt.Errorf("depth %d yields unknown resource %q", d.ID, y.Resource))
			}
		}
		md := d.ID.MultiplierDepth()
		for _, h := range t.DrillHeads() {
			if !h.Multi.Defined(md) {
				errs = append(errs, fmt.Errorf("drill head %q has no multiplier at %d (needed by depth %d)", h.ID, md, d.ID))
			}
		}
		for _, a := range t.Acids() {
			if !a.Multi.Defined(md) {
				errs = append(errs, fmt.Errorf("acid %q has no multiplier at %d (needed by depth %d)", a.ID, md, d.ID))
			}
		}
	}
	return errors.Join(errs...)
}

// formatValidationError converts validator errors into readable messages
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			messages = append(messages, fmt.Sprintf(
				"field '%s' failed validation: %s (value: '%v')",
				e.Namespace(),
				e.Tag(),
				e.Value(),
			))
		}
		return fmt.Errorf("invalid tables:\n  %s", strings.Join(messages, "\n  "))
	}
	return err
}
