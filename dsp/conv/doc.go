// Package conv provides the discrete linear convolution used to apply
// resolution kernels to lineshape signals.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain convolution, best for short kernels (<= 64 samples)
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
// Resolution broadening uses "same" mode, which keeps the signal length:
//
//	broadened, err := conv.Same(signal, kernel)
//
// Full and valid outputs are available through [ConvolveMode]:
//
//	full, err := conv.ConvolveMode(signal, kernel, conv.ModeFull)
//
// For repeated convolution with the same kernel, create a reusable convolver:
//
//	c, err := conv.NewOverlapAdd(kernel, blockSize)
//	result, err := c.Process(signal)
//
// # Algorithm Selection
//
// [Convolve] selects the algorithm from the kernel length:
//   - Kernel length <= 64: Direct convolution
//   - Kernel length > 64: FFT-based overlap-add
//
// Gaussian resolution kernels built on an oversampled grid are usually several
// hundred taps long, so broadening almost always takes the FFT path.
//
// # Edges
//
// Samples outside the signal are zero. Callers that need edge-free output
// pad the signal by at least half the kernel length on both sides before
// convolving and discard the padding afterwards.
package conv
