package remediation

// DeepMerge merges a patch into a world model tree without mutating either
// input. Rules: "provenance" lists concatenate, nested maps merge
// recursively, everything else is replaced by the patch value.
func DeepMerge(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		if k == "provenance" {
			out[k] = concatLists(base[k], v)
			continue
		}
		baseMap, baseOK := base[k].(map[string]any)
		patchMap, patchOK := v.(map[string]any)
		if baseOK && patchOK {
			out[k] = DeepMerge(baseMap, patchMap)
			continue
		}
		out[k] = v
	}
	return out
}

func concatLists(base, patch any) any {
	baseList, baseOK := base.([]any)
	patchList, patchOK := patch.([]any)
	switch {
	case baseOK && patchOK:
		out := make([]any, 0, len(baseList)+len(patchList))
		out = append(out, baseList...)
		return append(out, patchList...)
	case baseOK:
		return baseList
	case patchOK:
		return patchList
	default:
		return patch
	}
}
