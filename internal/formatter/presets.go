package formatter

import "fmt"

// Preset represents a template preset with name, template string, and description.
type Preset struct {
	Name        string
	Template    string
	Description string
}

// PresetRegistry manages template presets.
type PresetRegistry interface {
	Get(name string) (*Preset, error)
	List() []Preset
	Register(preset Preset) error
}

type presetRegistry struct {
	presets map[string]Preset
	order   []string
}

// NewPresetRegistry creates a new preset registry with the default presets.
func NewPresetRegistry() PresetRegistry {
	registry := &presetRegistry{
		presets: make(map[string]Preset),
	}
	for _, preset := range []Preset{
		{
			Name:        "compact",
			Template:    "[${id}] ${book-name} ${price}",
			Description: "Id, title and price",
		},
		{
			Name:        "detailed",
			Template:    "[${id}] ${book-name} | ${regulation} ${branch} ${year} | ${condition} | ${price} | seller ${seller}",
			Description: "Everything shown on a buy page card except the image",
		},
		{
			Name:        "sellers",
			Template:    "${seller}\t${book-name}",
			Description: "Seller roll number and title, tab separated",
		},
		{
			Name:        "tsv",
			Template:    "${id}\t${book-name}\t${regulation}\t${category}\t${year}\t${condition}\t${amount}\t${seller}",
			Description: "Tab separated values for scripts",
		},
	} {
		_ = registry.Register(preset)
	}
	return registry
}

// Get returns a preset by name, or an error if not found.
func (pr *presetRegistry) Get(name string) (*Preset, error) {
	preset, ok := pr.presets[name]
	if !ok {
		return nil, fmt.Errorf("preset not found: %s", name)
	}
	return &preset, nil
}

// List returns all available presets in registration order.
func (pr *presetRegistry) List() []Preset {
	result := make([]Preset, 0, len(pr.order))
	for _, name := range pr.order {
		result = append(result, pr.presets[name])
	}
	return result
}

// Register adds a new preset or overwrites an existing one.
func (pr *presetRegistry) Register(preset Preset) error {
	if preset.Name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if preset.Template == "" {
		return fmt.Errorf("preset template cannot be empty")
	}
	if _, exists := pr.presets[preset.Name]; !exists {
		pr.order = append(pr.order, preset.Name)
	}
	pr.presets[preset.Name] = preset
	return nil
}
