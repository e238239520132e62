// Package recipe defines the MCP tools operating on DSS recipes.
package recipe

import "sort"

// The backend accepts a recipe only when its input and output counts match the
// arity class of its type, so the classes are encoded here and checked before
// any platform call is made.

var singleInputSingleOutputTypes = setOf(
	"sync", "csync", "sort", "topn", "distinct", "prepare", "shaker",
	"sampling", "grouping", "window", "pivot", "download", "export", "upsert",
)

var singleInputMultiOutputTypes = setOf("split")

var multiInputSingleOutputTypes = setOf(
	"join", "vstack", "generate_features", "sql_query",
)

// Code recipes accept any number of inputs and outputs.
var codeRecipeTypes = setOf(
	"python", "r", "sql_script", "pyspark", "sparkr", "spark_scala",
	"shell", "spark_sql_query", "cpython", "ksql", "streaming_spark_scala",
)

var scoringTypes = setOf(
	"prediction_scoring", "clustering_scoring", "evaluation",
	"standalone_evaluation", "nlp_llm_evaluation",
)

var otherTypes = setOf(
	"extract_failed_rows", "nlp_llm_rag_embedding", "embed_dataset", "embed_documents",
)

var singleInputTypes = union(
	singleInputSingleOutputTypes, singleInputMultiOutputTypes, scoringTypes, otherTypes,
)

var singleOutputTypes = union(
	singleInputSingleOutputTypes, multiInputSingleOutputTypes, scoringTypes, otherTypes,
)

var allRecipeTypes = union(
	singleInputSingleOutputTypes, singleInputMultiOutputTypes,
	multiInputSingleOutputTypes, codeRecipeTypes, scoringTypes, otherTypes,
)

func setOf(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func union(sets ...map[string]struct{}) map[string]struct{} {
	out := map[string]struct{}{}
	for _, set := range sets {
		for v := range set {
			out[v] = struct{}{}
		}
	}
	return out
}

func contains(set map[string]struct{}, value string) bool {
	_, ok := set[value]
	return ok
}

func sortedTypes(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
