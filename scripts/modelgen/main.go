// Builds a demo random-forest artifact for the detection engine. The trees
// encode hand-assembled rules that mirror the attack shapes emitted by the
// traffic simulator and the pcapgen script, so a full pipeline can run
// without an offline training step.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"NetSentry/internal/classifier/forest"
	"NetSentry/internal/feature"
)

var classes = []string{"normal", "neptune", "portsweep", "ipsweep", "smurf", "land"}

const (
	clsNormal = iota
	clsNeptune
	clsPortsweep
	clsIpsweep
	clsSmurf
	clsLand
)

var fieldIndex = func() map[string]int {
	m := make(map[string]int, feature.FieldCount)
	for i, name := range feature.Names() {
		m[name] = i
	}
	return m
}()

func main() {
	outputFile := flag.String("o", "data/model/forest.gob", "Output model file path")
	trees := flag.Int("trees", 15, "Number of trees in the forest")
	seed := flag.Int64("seed", 42, "RNG seed for per-tree threshold jitter")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f := &forest.Forest{
		Classes:     classes,
		NumFeatures: feature.FieldCount,
	}
	for i := 0; i < *trees; i++ {
		f.Trees = append(f.Trees, buildTree(rng))
	}

	if dir := filepath.Dir(*outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create model directory: %v", err)
		}
	}
	if err := f.Save(*outputFile); err != nil {
		log.Fatalf("Failed to save model: %v", err)
	}
	log.Printf("Saved %d-tree forest (%d classes, %d features) to %s", len(f.Trees), len(f.Classes), f.NumFeatures, *outputFile)

	// Reload and smoke-test the artifact the way the engine will load it.
	reloaded, err := forest.Load(*outputFile)
	if err != nil {
		log.Fatalf("Failed to reload model: %v", err)
	}

	flood := feature.Vector{ProtocolType: 0, Service: 1, Flag: 1, SrcBytes: 60, Count: 40, SameSrvRate: 1}
	label, confidence, err := reloaded.Predict(flood.ToSlice())
	if err != nil {
		log.Fatalf("Smoke test failed: %v", err)
	}
	log.Printf("Smoke test: SYN flood sample classified as %s (confidence %.2f)", label, confidence)

	benign := feature.Vector{ProtocolType: 0, Service: 1, Flag: 0, SrcBytes: 400, Count: 3, SameSrvRate: 1}
	label, confidence, err = reloaded.Predict(benign.ToSlice())
	if err != nil {
		log.Fatalf("Smoke test failed: %v", err)
	}
	log.Printf("Smoke test: benign sample classified as %s (confidence %.2f)", label, confidence)
}

// buildTree assembles one decision tree. Every tree shares the same rule
// shape; per-tree threshold jitter is what keeps the forest vote from being
// all-or-nothing near the rule boundaries.
func buildTree(rng *rand.Rand) *forest.Node {
	countJitter := float64(rng.Intn(7) - 3)
	bytesJitter := float64(rng.Intn(120) - 60)

	// Bare-SYN bursts from one source: web ports mean a flood, the rest a
	// port sweep.
	s0Branch := split(fi("count"), 18+countJitter,
		leaf(clsNormal),
		split(fi("service"), 0.5, leaf(clsPortsweep), leaf(clsNeptune)),
	)

	// Flag codes: SF is 0, S0 is 1, everything above is REJ/RSTR/OTH.
	tcpBranch := split(fi("flag"), 0.5,
		leaf(clsNormal),
		split(fi("flag"), 1.5, s0Branch, leaf(clsNormal)),
	)

	// Oversized echo traffic is a smurf flood; many small pings from one
	// source is an address sweep.
	icmpBranch := split(fi("src_bytes"), 950+bytesJitter,
		split(fi("count"), 12+countJitter, leaf(clsNormal), leaf(clsIpsweep)),
		leaf(clsSmurf),
	)

	protoBranch := split(fi("protocol_type"), 1.5,
		tcpBranch,
		split(fi("protocol_type"), 2.5, icmpBranch, leaf(clsNormal)),
	)

	return split(fi("land"), 0.5, protoBranch, leaf(clsLand))
}

func leaf(class int) *forest.Node {
	return &forest.Node{Leaf: true, Class: class}
}

func split(field int, threshold float64, left, right *forest.Node) *forest.Node {
	return &forest.Node{Feature: field, Threshold: threshold, Left: left, Right: right}
}

func fi(name string) int {
	i, ok := fieldIndex[name]
	if !ok {
		log.Fatalf("Unknown feature field: %s", name)
	}
	return i
}
