package revision

// generateLatest synthesizes the revision entry a well-formed Source B
// should contain next: the highest decodable Source B code plus one step,
// or the configured start when no code decodes. The entry exists purely
// for comparison; it is never evidence that Source B contains that
// revision. Encoding failures (negative counter for a letter-based rule)
// simply omit the entry for this row.
func (c *Checker) generateLatest(entriesB []Entry) (Entry, bool) {
	if !c.settings.GenerateLatest || c.rule.Kind != KindIncremental {
		return Entry{}, false
	}

	highest := 0
	found := false
	for _, entry := range entriesB {
		if entry.Code == "" {
			continue
		}
		value, ok := c.rule.Decode(entry.Code)
		if !ok {
			continue
		}
		if !found || value > highest {
			highest = value
		}
		found = true
	}
	if !found {
		highest = c.rule.Start - c.rule.Step
	}

	code, err := c.rule.Encode(highest + c.rule.Step)
	if err != nil {
		return Entry{}, false
	}

	description := ""
	if c.settings.DescriptionCheck {
		description = c.settings.LatestDescription
	}
	date, hasDate, _ := c.normalizeDate(c.settings.LatestDate, false)

	return Entry{
		Code:           code,
		Description:    description,
		Date:           date,
		HasDate:        hasDate,
		RawCode:        code,
		RawDescription: description,
		RawDate:        c.settings.LatestDate,
		Column:         "GeneratedLatest",
		Source:         SourceGenerated,
		Generated:      true,
	}, true
}
