package block

import "tabsblock/internal/jsonutil"

// Decode parses a property bag. Missing or null tabs decode to nil and are
// healed on the next settle; a missing variant decodes to modern.
func Decode(data []byte) (Props, error) {
	var p Props
	if err := jsonutil.UnmarshalObject(data, &p, "decode tabs props"); err != nil {
		return Props{}, err
	}
	if p.Variant == "" {
		p.Variant = VariantModern
	}
	return p, nil
}

// Encode serializes p in the stable { "tabs", "variant" } shape.
func Encode(p Props) ([]byte, error) {
	if p.Tabs == nil {
		p.Tabs = []Tab{}
	}
	return jsonutil.MarshalIndentWithContext(p, "encode tabs props")
}
