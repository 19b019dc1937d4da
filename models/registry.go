package models

// All lists every catalog model in dependency order, ready for migration.
func All() []interface{} {
	return []interface{}{
		&Category{},
		&SeasonalEvent{},
		&Attribute{},
		&AttributeValue{},
		&ProductType{},
		&Product{},
		&ProductProductType{},
		&ProductLine{},
		&ProductLineAttribute{},
		&ProductImage{},
	}
}
