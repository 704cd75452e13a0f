package schema

import "sort"

// VariableMap maps dotted schema paths to declared type tags. The sentinel
// "array" marks a collection; an array path may also carry child paths
// describing the element shape (users -> "array", users.name -> "string").
type VariableMap map[string]string

// TypeArray is the sentinel tag recorded for collection paths.
const TypeArray = "array"

// TypeUnknown tags paths whose declared type is absent or unusable.
const TypeUnknown = "unknown"

// Index flattens a schema document into a VariableMap. It never fails:
// malformed or unexpected sub-schemas simply produce no entries for that
// branch, and untyped leaves degrade to "unknown".
func Index(doc Document) VariableMap {
	vars := VariableMap{}
	walkNode(doc.Root(), "", vars)
	return vars
}

// walkNode dispatches on the JSON shape of a schema node. Lists occur for
// tuple-typed "items": each slot flattens onto the same prefix, merging
// siblings at the same path.
func walkNode(node any, prefix string, vars VariableMap) {
	switch n := node.(type) {
	case map[string]any:
		walkObject(n, prefix, vars)
	case []any:
		for _, item := range n {
			walkNode(item, prefix, vars)
		}
	}
}

func walkObject(obj map[string]any, prefix string, vars VariableMap) {
	if rawType, present := obj["type"]; present {
		declared, ok := rawType.(string)
		if !ok {
			if prefix != "" {
				vars[prefix] = TypeUnknown
			}
			return
		}
		switch {
		case declared == "object" && obj["properties"] != nil:
			walkProperties(obj["properties"], prefix, vars)
		case declared == TypeArray && obj["items"] != nil:
			if prefix != "" {
				vars[prefix] = TypeArray
			}
			// Array element fields flatten onto the array's own path, not a
			// synthetic ".items" segment.
			walkNode(obj["items"], prefix, vars)
		default:
			if prefix != "" {
				vars[prefix] = declared
			}
		}
		return
	}

	// Object node without a "type" key: schemas omitting "type": "object"
	// are tolerated as long as they carry "properties".
	if obj["properties"] != nil {
		walkProperties(obj["properties"], prefix, vars)
		return
	}

	// General object, not a schema definition. Values that are themselves
	// containers recurse; string leaves record their literal value as the
	// type tag ({"user": {"name": "string"}} -> user.name: "string").
	for _, key := range sortedKeys(obj) {
		path := joinPath(prefix, key)
		switch value := obj[key].(type) {
		case map[string]any, []any:
			walkNode(value, path, vars)
		case string:
			vars[path] = value
		default:
			vars[path] = TypeUnknown
		}
	}
}

func walkProperties(props any, prefix string, vars VariableMap) {
	properties, ok := props.(map[string]any)
	if !ok {
		return
	}
	for _, name := range sortedKeys(properties) {
		path := joinPath(prefix, name)
		prop, ok := properties[name].(map[string]any)
		if !ok {
			vars[path] = TypeUnknown
			continue
		}
		declared, ok := prop["type"].(string)
		if !ok {
			vars[path] = TypeUnknown
			continue
		}
		switch {
		case declared == "object":
			walkObject(prop, path, vars)
		case declared == TypeArray && prop["items"] != nil:
			vars[path] = TypeArray
			walkNode(prop["items"], path, vars)
		default:
			vars[path] = declared
		}
	}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
