package ports

// LayerPolicyPort narrows the layers a dataset search may use. It must
// preserve the order of the input.
type LayerPolicyPort interface {
	SelectLayers(layers []string) []string
}
