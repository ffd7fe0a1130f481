package update

import "encoding/json"

// extractTag pulls the latest-release tag out of a raw metadata body.
// Precedence: a non-object body is malformed; an object without a
// string tag_name surfaces GitHub's message field when present;
// otherwise the tag is simply missing. The tag comes back exactly as
// sent — trimming and validation belong to the version parser.
func extractTag(data []byte) (string, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", &Error{Kind: KindMalformedResponse, Message: "release metadata is not a JSON object", Cause: err}
	}
	if obj == nil {
		// "null" decodes without error but carries nothing.
		return "", newErrorf(KindMalformedResponse, "release metadata is not a JSON object")
	}

	if raw, ok := obj["tag_name"]; ok {
		var tag string
		if err := json.Unmarshal(raw, &tag); err == nil {
			return tag, nil
		}
	}

	if raw, ok := obj["message"]; ok {
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			return "", newErrorf(KindPlatform, "GitHub API error: %s", msg)
		}
	}

	return "", newErrorf(KindMissingTag, "release metadata has no usable tag_name")
}
