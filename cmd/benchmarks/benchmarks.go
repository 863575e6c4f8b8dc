package main

import (
	"crypto/rand"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sem-hub/snake-rc/internal/configs"
	"github.com/sem-hub/snake-rc/internal/crypt"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var key = []byte("32 bytes string for benchmarks 1")

var (
	widths    = []int{8, 16, 32, 64, 128}
	roundSets = []int{8, 12, 16, 20, 32, 64, 128, 252}
)

type result struct {
	encrypt time.Duration
	decrypt time.Duration
}

func main() {
	_ = configs.GetConfigFile()
	logger := configs.InitLogger("bench")

	plaintext := make([]byte, 1024*1024) // 1 MB of data
	rand.Read(plaintext)

	results := map[string]result{}
	series := map[string]plotter.XYs{}
	for _, engineName := range []string{"rc5", "rc6"} {
		for _, width := range widths {
			for _, rounds := range roundSets {
				name := fmt.Sprintf("%s-%d/%d", engineName, width, rounds)
				engine, err := crypt.CreateEngine(engineName, "ctr", width, rounds, key)
				if err != nil {
					logger.Warn("Skipping engine", "engine", name, "error", err)
					continue
				}
				start := time.Now()
				ciphertext, err := engine.Encrypt(plaintext)
				encElapsed := time.Since(start)
				if err != nil {
					logger.Error("Encrypt failed", "engine", name, "error", err)
					continue
				}
				start = time.Now()
				_, err = engine.Decrypt(ciphertext)
				decElapsed := time.Since(start)
				if err != nil {
					logger.Error("Decrypt failed", "engine", name, "error", err)
					continue
				}
				results[name] = result{encrypt: encElapsed, decrypt: decElapsed}

				lineName := fmt.Sprintf("%s-%d", engineName, width)
				series[lineName] = append(series[lineName], plotter.XY{
					X: float64(rounds),
					Y: mbps(encElapsed),
				})
			}
		}
	}

	keys := make([]string, 0, len(results))
	for name := range results {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	fmt.Println("Results:")
	for _, name := range keys {
		r := results[name]
		fmt.Printf("Engine: %-12s encrypt: %8.1f MB/s  decrypt: %8.1f MB/s\n",
			name, mbps(r.encrypt), mbps(r.decrypt))
	}
	fmt.Println("Sorted by encrypt throughput:")
	sort.Slice(keys, func(i, j int) bool {
		return results[keys[i]].encrypt < results[keys[j]].encrypt
	})
	for _, name := range keys {
		r := results[name]
		fmt.Printf("Engine: %-12s encrypt: %8.1f MB/s  decrypt: %8.1f MB/s\n",
			name, mbps(r.encrypt), mbps(r.decrypt))
	}

	if err := renderChart(series); err != nil {
		logger.Error("Failed to render chart", "error", err)
	}
}

func mbps(d time.Duration) float64 {
	return 1.0 / d.Seconds()
}

func renderChart(series map[string]plotter.XYs) error {
	p := plot.New()
	p.Title.Text = "RC5/RC6 encrypt throughput"
	p.X.Label.Text = "rounds"
	p.Y.Label.Text = "MB/s"

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		xys := series[name]
		sort.Slice(xys, func(a, b int) bool { return xys[a].X < xys[b].X })
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(name, line)
	}

	file := fmt.Sprintf("benchmark-%s.png", uuid.New().String())
	if err := p.Save(8*vg.Inch, 6*vg.Inch, file); err != nil {
		return err
	}
	fmt.Println("Chart written to", file)
	return nil
}
