// Package reasoner is an in-process engine that answers natural-language
// queries against a fixed corpus of short documents.
//
// Every query is ranked two ways: semantic (cosine similarity of
// term-frequency vectors over the corpus vocabulary) and keyword (token
// overlap). A rule-based planner then picks one ranking or a hybrid of both,
// and a confidence gate falls back to the best hit overall when the chosen
// match scores below the threshold. The engine never fails on a query:
// when nothing matches it returns a "No results found" sentinel.
//
//	engine, _ := reasoner.New(
//	    reasoner.WithCorpus([]string{"Go is a programming language", "Rust has a borrow checker"}),
//	    reasoner.WithTopK(3),
//	)
//	defer engine.Close()
//
//	res := engine.Reason(ctx, "programming language")
//	fmt.Println(res.Decision, res.BestMatch.Text, res.BestMatch.Score)
//
// An Engine is read-only after New and safe for concurrent use.
package reasoner
