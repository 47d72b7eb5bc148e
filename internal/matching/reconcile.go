package matching

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// fuzzyMatchThreshold is the minimum edit-distance ratio (0-100) for the
// fuzzy pass to treat a job skill as satisfied.
const fuzzyMatchThreshold = 85

// semanticMatchThreshold is the minimum cosine similarity for the semantic
// pass to treat a job skill as satisfied.
const semanticMatchThreshold = 0.3

// similarityRatio and fitVectorizer are variables so tests can stand in a
// failing implementation and reach the pass-downgrade paths.
var (
	similarityRatio = fuzzy.Ratio
	fitVectorizer   = newTFIDFVectorizer
)

// reconciliation is the outcome of the three-pass skill reconciler. All
// skills are lowercased.
type reconciliation struct {
	matched    map[string]struct{}
	exactCount int
	fuzzyCount int
	semCount   int
}

// reconcileSkills resolves which job skills are satisfied by the resume via
// three cascaded passes: exact set intersection, fuzzy edit-distance ratio,
// and TF-IDF cosine similarity. Each pass only sees the job skills left
// unresolved by the passes before it. Both inputs must already be
// lowercased, trimmed, and deduplicated in original order.
func reconcileSkills(resumeSkills, jobSkills []string) reconciliation {
	rec := reconciliation{matched: make(map[string]struct{})}
	if len(resumeSkills) == 0 || len(jobSkills) == 0 {
		return rec
	}

	// Exact pass: set intersection.
	resumeSet := lowerSet(resumeSkills)
	for _, job := range jobSkills {
		if _, ok := resumeSet[job]; ok {
			rec.matched[job] = struct{}{}
			rec.exactCount++
		}
	}

	// Fuzzy pass over the remainder.
	residual := unresolved(jobSkills, rec.matched)
	for _, job := range fuzzyPass(resumeSkills, residual) {
		rec.matched[job] = struct{}{}
		rec.fuzzyCount++
	}

	// Semantic pass over what is still left.
	residual = unresolved(jobSkills, rec.matched)
	for _, job := range semanticPass(resumeSkills, residual) {
		rec.matched[job] = struct{}{}
		rec.semCount++
	}

	return rec
}

// unresolved filters job skills to those not yet matched, preserving order.
func unresolved(jobSkills []string, matched map[string]struct{}) []string {
	out := make([]string, 0, len(jobSkills))
	for _, s := range jobSkills {
		if _, ok := matched[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// fuzzyPass matches each residual job skill against the best-scoring resume
// skill by edit-distance ratio. The best score wins, with ties broken by
// resume input order, so the result does not depend on map iteration order.
// Any panic from the similarity computation downgrades the whole pass to
// "no matches".
func fuzzyPass(resumeSkills, jobSkills []string) (matched []string) {
	defer func() {
		if r := recover(); r != nil {
			matched = nil
		}
	}()

	for _, job := range jobSkills {
		best := 0
		for _, resume := range resumeSkills {
			if resume == job {
				// Identical strings belong to the exact pass.
				continue
			}
			if ratio := similarityRatio(job, resume); ratio > best {
				best = ratio
			}
		}
		if best >= fuzzyMatchThreshold {
			matched = append(matched, job)
		}
	}
	return matched
}

// semanticPass matches residual job skills against resume skills by cosine
// similarity in a TF-IDF space fitted fresh on the union of both lists. A
// job skill matches when its maximum similarity across all resume skills
// reaches the threshold; zero vectors can never match. Vectorization
// failures and panics downgrade the pass to "no matches".
func semanticPass(resumeSkills, jobSkills []string) (matched []string) {
	defer func() {
		if r := recover(); r != nil {
			matched = nil
		}
	}()

	if len(resumeSkills) == 0 || len(jobSkills) == 0 {
		return nil
	}

	corpus := make([]string, 0, len(resumeSkills)+len(jobSkills))
	corpus = append(corpus, resumeSkills...)
	corpus = append(corpus, jobSkills...)

	vectorizer, err := fitVectorizer(corpus)
	if err != nil {
		// Everything was stop words or too short. Nothing to match on.
		return nil
	}

	resumeVecs := make([][]float64, len(resumeSkills))
	for i, s := range resumeSkills {
		resumeVecs[i] = vectorizer.transform(s)
	}

	for _, job := range jobSkills {
		jobVec := vectorizer.transform(job)
		best := 0.0
		for _, resumeVec := range resumeVecs {
			if sim := cosineSimilarity(jobVec, resumeVec); sim > best {
				best = sim
			}
		}
		if best >= semanticMatchThreshold {
			matched = append(matched, job)
		}
	}
	return matched
}
