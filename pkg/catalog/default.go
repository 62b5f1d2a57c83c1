package catalog

// Default returns the built-in knowledge base, compiled and ready for
// use. The vocabulary mixes Dutch and English terms for each category,
// including abbreviated stems to catch truncated drawing labels.
func Default() *Catalog {
	c := &Catalog{
		Categories: []Category{
			{
				Name: "floor_plan",
				Rules: []Rule{
					{Pattern: `woonkamer|slaapkamer|keuken|badkamer|toilet|gang|berging|garage|kelder|zolder`},
					{Pattern: `living|bedroom|kitchen|bathroom|hall|storage|garage|basement|attic`},
					{Pattern: `woon|slaap|bad|wc|gang|berg|gar|kel|zol`},
					{Pattern: `kamer|room|suite|studio|appartement|apartment`},
				},
				Heuristic: &Heuristic{
					Kind:     HeuristicRoomLayout,
					Weight:   0.2,
					MinArea:  10000,
					MinCount: 2,
				},
			},
			{
				Name: "section",
				Rules: []Rule{
					{Pattern: `doorsnede|section|doorsnee|sectie|profiel|profile`},
					{Pattern: `a-a|b-b|c-c|d-d|e-e|f-f|g-g|h-h`},
					{Pattern: `doorsnede|section|cut|snede`},
				},
				Heuristic: &Heuristic{
					Kind:     HeuristicVerticalLines,
					Weight:   0.2,
					MaxDelta: 10,
					MinLines: 5,
				},
			},
			{
				Name: "detail",
				Rules: []Rule{
					{Pattern: `detail|detaal|uitvergroting|enlargement|detailering`},
					{Pattern: `1:10|1:5|1:2|1:1|1:20|1:50`},
					{Pattern: `detail|detail|uitwerk|enlargement`},
				},
				Heuristic: &Heuristic{
					Kind:     HeuristicLargeScale,
					Weight:   0.3,
					MaxScale: 20,
				},
			},
			{
				Name: "installation",
				Rules: []Rule{
					{Pattern: `wcd|cai|mv|schakelaar|thermostaat|lichtpunt`},
					{Pattern: `electrical|plumbing|ventilation|switch|thermostat|light`},
					{Pattern: `elektra|sanitair|ventilatie|verwarming|koeling`},
					{Pattern: `socket|outlet|switch|thermostat|light|ventilation`},
				},
				Heuristic: &Heuristic{
					Kind:   HeuristicElectricalSymbols,
					Weight: 0.2,
					Tokens: []string{"wcd", "lichtpunt", "schakelaar", "thermostaat"},
				},
			},
			{
				Name: "component_table",
				Rules: []Rule{
					{Pattern: `merk|type|afmeting|brand|dimension|materiaal`},
					{Pattern: `tabel|table|specificatie|specification|lijst|list`},
					{Pattern: `product|component|element|onderdeel|part`},
					// Strict table-header rule: all three classic column
					// labels present at once.
					{AllOf: []string{"merk", "type", "afmeting"}},
				},
			},
			{
				Name: "elevation",
				Rules: []Rule{
					{Pattern: `gevel|elevation|voorgevel|achtergevel|zijgevel`},
					{Pattern: `facade|front|rear|side|elevation`},
					{Pattern: `gevel|elevation|facade|voor|achter|zij`},
				},
			},
			{
				Name: "site_plan",
				Rules: []Rule{
					{Pattern: `terrein|site|perceel|plot|grondplan`},
					{Pattern: `terrain|site|plot|ground|landscape`},
					{Pattern: `terrein|site|perceel|grond|land`},
				},
			},
			{
				Name: "structural",
				Rules: []Rule{
					{Pattern: `constructie|structure|fundering|foundation`},
					{Pattern: `beton|concrete|staal|steel|hout|wood`},
					{Pattern: `constructie|structure|fundering|beton|staal`},
				},
			},
		},
	}

	// The built-in catalog must always compile.
	if err := c.Compile(); err != nil {
		panic("catalog: built-in catalog invalid: " + err.Error())
	}
	return c
}
