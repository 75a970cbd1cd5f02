package content

// Outline builds the table of contents: the intro first, then every section
// in order with its entry titles as items.
func Outline(c Content) []OutlineSection {
	outline := make([]OutlineSection, 0, len(c.Sections)+1)
	outline = append(outline, OutlineSection{
		Title:   c.About.Intro.Title,
		Display: c.About.Intro.Display,
		Items:   []string{},
	})

	for _, s := range c.Sections {
		items := make([]string, 0, len(s.Entries))
		for _, e := range s.Entries {
			items = append(items, e.Title)
		}
		outline = append(outline, OutlineSection{
			Title:   s.Title,
			Display: s.Display,
			Items:   items,
		})
	}
	return outline
}
