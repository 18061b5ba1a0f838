package physics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Superstep", func() {
	const tol = 1e-12

	Context("two equal masses released from rest", func() {
		var b Bodies

		BeforeEach(func() {
			var err error
			b, err = FromParams([]float64{-1, 0, 0, 0, 1, 1, 0, 0, 0, 1}, 1)
			Expect(err).NotTo(HaveOccurred())
		})

		It("keeps the centroid at the origin while they fall", func() {
			for frame := 0; frame < 10; frame++ {
				b = Superstep(b, 0.1, DefaultSubsteps)
				x, y := b.CenterOfMass()
				Expect(x).To(BeNumerically("~", 0, tol))
				Expect(y).To(BeNumerically("~", 0, tol))
			}
			Expect(b.X[1] - b.X[0]).To(BeNumerically("<", 2))
		})
	})

	Context("a mirrored pair", func() {
		It("stays mirrored through the origin", func() {
			b, err := FromParams([]float64{
				1, 0.5, 0.1, 0.4, 1,
				-1, -0.5, -0.1, -0.4, 1,
			}, 1)
			Expect(err).NotTo(HaveOccurred())

			for frame := 0; frame < 20; frame++ {
				b = Superstep(b, 0.05, DefaultSubsteps)
				Expect(b.X[0]).To(BeNumerically("~", -b.X[1], tol))
				Expect(b.Y[0]).To(BeNumerically("~", -b.Y[1], tol))
				Expect(b.VX[0]).To(BeNumerically("~", -b.VX[1], tol))
				Expect(b.VY[0]).To(BeNumerically("~", -b.VY[1], tol))
			}
		})
	})

	Context("without gravity", func() {
		It("moves every body in a straight line regardless of mass", func() {
			b0, err := FromParams([]float64{
				0, 0, 1, 2, 3,
				5, 5, -1, 0, 0.001,
				-2, 3, 0.5, -0.25, 1e6,
			}, 0)
			Expect(err).NotTo(HaveOccurred())

			b := b0
			for frame := 1; frame <= 5; frame++ {
				b = Superstep(b, 1, DefaultSubsteps)
				t := float64(frame)
				for i := 0; i < b.N(); i++ {
					Expect(b.X[i]).To(BeNumerically("~", b0.X[i]+b0.VX[i]*t, 1e-9))
					Expect(b.Y[i]).To(BeNumerically("~", b0.Y[i]+b0.VY[i]*t, 1e-9))
					Expect(b.VX[i]).To(Equal(b0.VX[i]))
					Expect(b.VY[i]).To(Equal(b0.VY[i]))
				}
			}
		})
	})

	Context("energy", func() {
		It("drifts far less with the correction than without", func() {
			b, err := FromParams([]float64{-1, 0, 0, 0.3, 1, 1, 0, 0, -0.3, 1}, 1)
			Expect(err).NotTo(HaveOccurred())
			e0 := Energy(b)

			corrected := Superstep(b, 0.1, 1)
			raw := RawStep(b, 0.1, 1)

			Expect(math.Abs(Energy(corrected) - e0)).To(BeNumerically("<", math.Abs(Energy(raw)-e0)))
		})

		It("stays within 1e-6 relative over a superstep of ten substeps", func() {
			b, err := FromParams([]float64{
				0, 0, 0, 0, 10,
				1, 0, 0, 3.1, 0.01,
				-2, 0, 0, -2.2, 0.02,
			}, 1)
			Expect(err).NotTo(HaveOccurred())
			e0 := Energy(b)

			next := Superstep(b, 0.01, 10)
			Expect(math.Abs((Energy(next) - e0) / e0)).To(BeNumerically("<", 1e-6))
		})
	})
})
