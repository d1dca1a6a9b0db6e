package consumer

import "github.com/segmentio/kafka-go"

// getHeader returns the first header value for key, or "" when absent.
func getHeader(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
