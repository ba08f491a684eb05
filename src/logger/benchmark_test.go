// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"testing"

	"github.com/H0llyW00dzZ/x509-cert-inventory/src/logger"
)

func BenchmarkJSONLogger_Printf(b *testing.B) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("Benchmark message %d", i)
	}
}

func BenchmarkJSONLogger_PrintfConcurrent(b *testing.B) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			log.Printf("Concurrent message %d", i)
			i++
		}
	})
}

func BenchmarkJSONLogger_Filtered(b *testing.B) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Debugf("Filtered message %d", i)
	}
}

func BenchmarkCLILogger_Printf(b *testing.B) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("Benchmark message %d", i)
	}
}

func BenchmarkJSONLogger_ComplexMessage(b *testing.B) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("Parsed %s: subject %s, expires in %d days",
			"certs/urn_node_A.pem", "CN=urn:node:A,DC=dataone,DC=org", i)
	}
}
