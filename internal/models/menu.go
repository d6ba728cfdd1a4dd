package models

// MenuItem is a single entry on the café menu.
//
// IDs are assigned by the store at creation time. Category is a plain label;
// it is not checked against the category list, matching the behavior the
// admin page was built against.
type MenuItem struct {
	ID          int     `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ItemPatch is a partial MenuItem as supplied by the admin client.
// Pointer fields distinguish "absent" from "set to zero value": absent keys
// leave the existing value untouched, present keys overwrite it. The ID field
// is deliberately not protected — a body that carries an id overwrites the
// stored one, on create as well as update.
type ItemPatch struct {
	ID          *int     `json:"id"`
	Category    *string  `json:"category"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// Apply merges the patch into item, field by field. Caller fields win.
func (p *ItemPatch) Apply(item *MenuItem) {
	if p.ID != nil {
		item.ID = *p.ID
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
}
