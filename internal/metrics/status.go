package metrics

const namespace = "tokengate"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
