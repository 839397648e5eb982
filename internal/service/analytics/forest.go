package analytics

import (
	"math/rand"
	"sort"
)

// randomForest is a bagged ensemble of regression trees fit on the
// (date, hour) demand buckets. Trees differ only through bootstrap
// resampling from a seeded source, so refitting on identical input
// reproduces the same model bit for bit.
type randomForest struct {
	trees       []*treeNode
	importances []float64
	numFeatures int
	numSamples  int
}

type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

func fitForest(samples []trainingSample, numTrees, maxDepth int, seed int64) *randomForest {
	if numTrees <= 0 {
		numTrees = 50
	}
	if maxDepth <= 0 {
		maxDepth = 8
	}

	numFeatures := 0
	if len(samples) > 0 {
		numFeatures = len(samples[0].features)
	}

	forest := &randomForest{
		trees:       make([]*treeNode, 0, numTrees),
		importances: make([]float64, numFeatures),
		numFeatures: numFeatures,
		numSamples:  len(samples),
	}

	rng := rand.New(rand.NewSource(seed))
	for t := 0; t < numTrees; t++ {
		indices := bootstrap(len(samples), rng)
		forest.trees = append(forest.trees, growTree(samples, indices, maxDepth, 0, forest.importances))
	}
	return forest
}

func bootstrap(n int, rng *rand.Rand) []int {
	if n == 0 {
		return nil
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = rng.Intn(n)
	}
	return indices
}

// growTree builds a node over the given sample indices, accumulating each
// split's impurity decrease into importances.
func growTree(samples []trainingSample, indices []int, maxDepth, depth int, importances []float64) *treeNode {
	if len(indices) == 0 {
		return &treeNode{leaf: true, value: 0}
	}

	node := &treeNode{leaf: true, value: targetMean(samples, indices)}
	if depth >= maxDepth || len(indices) < 2 {
		return node
	}

	feature, threshold, gain, ok := bestSplit(samples, indices)
	if !ok {
		return node
	}

	left := make([]int, 0, len(indices))
	right := make([]int, 0, len(indices))
	for _, idx := range indices {
		if samples[idx].features[feature] <= threshold {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return node
	}

	importances[feature] += gain

	node.leaf = false
	node.feature = feature
	node.threshold = threshold
	node.left = growTree(samples, left, maxDepth, depth+1, importances)
	node.right = growTree(samples, right, maxDepth, depth+1, importances)
	return node
}

// bestSplit scans every feature for the threshold minimizing the summed
// squared error of the two children. gain is the SSE reduction against the
// unsplit node.
func bestSplit(samples []trainingSample, indices []int) (feature int, threshold, gain float64, ok bool) {
	parentSSE := targetSSE(samples, indices)
	if parentSSE == 0 {
		return 0, 0, 0, false
	}

	numFeatures := len(samples[indices[0]].features)
	best := parentSSE

	order := make([]int, len(indices))
	for f := 0; f < numFeatures; f++ {
		copy(order, indices)
		sort.Slice(order, func(i, j int) bool {
			return samples[order[i]].features[f] < samples[order[j]].features[f]
		})

		// Prefix sums over the sorted targets let each candidate split be
		// scored in constant time.
		var sumLeft, sqLeft float64
		sumTotal, sqTotal := 0.0, 0.0
		for _, idx := range order {
			sumTotal += samples[idx].rides
			sqTotal += samples[idx].rides * samples[idx].rides
		}

		for i := 0; i < len(order)-1; i++ {
			y := samples[order[i]].rides
			sumLeft += y
			sqLeft += y * y

			cur := samples[order[i]].features[f]
			next := samples[order[i+1]].features[f]
			if cur == next {
				continue
			}

			nLeft := float64(i + 1)
			nRight := float64(len(order) - i - 1)
			sseLeft := sqLeft - sumLeft*sumLeft/nLeft
			sumRight := sumTotal - sumLeft
			sseRight := (sqTotal - sqLeft) - sumRight*sumRight/nRight

			if total := sseLeft + sseRight; total < best {
				best = total
				feature = f
				threshold = (cur + next) / 2
				ok = true
			}
		}
	}

	return feature, threshold, parentSSE - best, ok
}

func (f *randomForest) Predict(features []float64) float64 {
	if len(f.trees) == 0 {
		return 0
	}
	sum := 0.0
	for _, tree := range f.trees {
		sum += predictTree(tree, features)
	}
	return sum / float64(len(f.trees))
}

func predictTree(node *treeNode, features []float64) float64 {
	for !node.leaf {
		if features[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

// FeatureImportances returns the accumulated impurity reductions
// normalized to sum to 1. A forest that never split (constant or tiny
// training set) reports uniform weights.
func (f *randomForest) FeatureImportances() []float64 {
	out := make([]float64, f.numFeatures)
	total := 0.0
	for _, v := range f.importances {
		total += v
	}
	if total == 0 {
		for i := range out {
			out[i] = 1.0 / float64(f.numFeatures)
		}
		return out
	}
	for i, v := range f.importances {
		out[i] = v / total
	}
	return out
}

func targetMean(samples []trainingSample, indices []int) float64 {
	sum := 0.0
	for _, idx := range indices {
		sum += samples[idx].rides
	}
	return sum / float64(len(indices))
}

func targetSSE(samples []trainingSample, indices []int) float64 {
	m := targetMean(samples, indices)
	sse := 0.0
	for _, idx := range indices {
		d := samples[idx].rides - m
		sse += d * d
	}
	return sse
}
