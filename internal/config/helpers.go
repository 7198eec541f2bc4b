package config

func stringPtr(s string) *string        { return &s }
func boolPtr(b bool) *bool              { return &b }
func strSlicePtr(ss []string) *[]string { return &ss }

func derefString(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func derefBool(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
