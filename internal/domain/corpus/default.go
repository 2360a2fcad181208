package corpus

var defaultTexts = []string{
	"Machine learning is a subset of artificial intelligence that enables systems to learn from data",
	"Deep learning uses neural networks with multiple layers to process complex patterns",
	"Natural language processing helps computers understand and generate human language",
	"Computer vision enables machines to interpret and analyze visual information from images",
	"Reinforcement learning trains agents to make decisions through reward and punishment signals",
	"Data science combines statistics, programming, and domain knowledge to extract insights",
	"Neural networks are inspired by biological neurons and process information in layers",
	"Algorithm optimization improves computational efficiency and reduces execution time",
	"Cloud computing provides on-demand computing resources over the internet",
	"Distributed systems manage multiple machines working together to achieve a common goal",
	"Blockchain technology ensures security through decentralized and immutable records",
	"Quantum computing leverages quantum mechanics principles for exponentially faster processing",
}

// Default returns the built-in corpus of twelve technology definitions.
func Default() Corpus {
	return New(defaultTexts)
}
