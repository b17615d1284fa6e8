// Package metrics exposes application metrics collectors.
package metrics

const (
	namespace = "coinexplorer"
	unknown   = "unknown"
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return unknown
	}
	return v
}
